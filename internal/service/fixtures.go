package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fraenktools/fraenkctl/internal/logger"
	"github.com/fraenktools/fraenkctl/models"
)

// Fixture file names looked up in the fixtures directory.
const (
	fixtureContracts   = "contracts.json"
	fixtureConsumption = "data_consumption.json"
)

type fixtureService struct {
	dir    string
	logger *logger.Logger
}

// NewFixtureService constructs the dry-run [UsageService]. It performs no
// network I/O: the two reads come from static files in dir and Login is a
// no-op.
func NewFixtureService(dir string, log *logger.Logger) UsageService {
	return &fixtureService{dir: dir, logger: log}
}

// Login implements [UsageService]. Dry-run mode bypasses authentication.
func (f *fixtureService) Login(ctx context.Context, creds models.Credentials) error {
	f.logger.Debug().Msg("dry-run: skipping authentication")
	return nil
}

// FetchContracts implements [UsageService]. The fixture may hold either a
// JSON array of contracts or a single contract object.
func (f *fixtureService) FetchContracts(ctx context.Context) ([]models.Contract, error) {
	raw, err := f.loadFixture(fixtureContracts)
	if err != nil {
		return nil, err
	}

	var contracts []models.Contract
	if err = json.Unmarshal(raw, &contracts); err == nil {
		return contracts, nil
	}

	var single models.Contract
	if err = json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", fixtureContracts, err)
	}
	return []models.Contract{single}, nil
}

// FetchConsumption implements [UsageService].
func (f *fixtureService) FetchConsumption(ctx context.Context) (models.ConsumptionReport, error) {
	raw, err := f.loadFixture(fixtureConsumption)
	if err != nil {
		return models.ConsumptionReport{}, err
	}

	var report models.ConsumptionReport
	if err = json.Unmarshal(raw, &report); err != nil {
		return models.ConsumptionReport{}, fmt.Errorf("decode fixture %s: %w", fixtureConsumption, err)
	}
	report.Raw = raw

	return report, nil
}

func (f *fixtureService) loadFixture(name string) (json.RawMessage, error) {
	path := filepath.Join(f.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, path)
		}
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return raw, nil
}
