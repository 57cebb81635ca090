package session

// Device identification values sent with every request. They are fixed and
// non-secret: the carrier only serves clients that look like its mobile app.
const (
	tenant        = "fraenk"
	appOS         = "Android"
	appOSVersion  = "13"
	appDevice     = "Go-Client"
	appVendor     = "Go"
	appVersion    = "1.13.9"
	headerTenant  = "X-Tenant"
	headerOS      = "X-App-OS"
	headerDevice  = "X-App-Device"
	headerVendor  = "X-App-Device-Vendor"
	headerOSVer   = "X-App-OS-Version"
	headerVersion = "X-App-Version"
)

// DeviceHeaders returns the fixed device-identification header set attached
// to every request, authenticated or not. The map is freshly allocated on
// each call so callers may extend it.
func DeviceHeaders() map[string]string {
	return map[string]string{
		headerTenant:  tenant,
		headerOS:      appOS,
		headerDevice:  appDevice,
		headerVendor:  appVendor,
		headerOSVer:   appOSVersion,
		headerVersion: appVersion,
	}
}

// AuthHeaders returns [DeviceHeaders] plus a bearer Authorization header when
// s carries an access token. It is a pure function of s: a token-less session
// yields exactly the device header set.
func AuthHeaders(s Session) map[string]string {
	headers := DeviceHeaders()
	if s.AccessToken != "" {
		headers["Authorization"] = "Bearer " + s.AccessToken
	}
	return headers
}
