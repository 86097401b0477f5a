package collector

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/fixtures"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/models"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/niconico"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/repositories"
	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/charmbracelet/log"
)

// APICall wraps a single client call so the pipeline can treat every
// endpoint uniformly.
type APICall func(ctx context.Context) (any, error)

// Waiter paces API calls. Satisfied by [rate.Limiter].
type Waiter interface {
	Wait(ctx context.Context) error
}

// Processor defines the minimal interface for fixture processing.
//
// The Collector depends only on Process rather than the full Orchestrator,
// keeping per-category collection decoupled from pipeline internals.
type Processor interface {
	// Process fetches one API response, stabilizes it, records its type,
	// and saves it as the category/name fixture. Returns the stabilized
	// generic data that was written.
	Process(ctx context.Context, category fixtures.Category, name string, call APICall) (any, error)
}

// Orchestrator implements Processor and drives full generation runs.
type Orchestrator struct {
	stabilizer *fixtures.Stabilizer
	saver      *fixtures.Saver
	typeMap    *fixtures.TypeMap
	limiter    Waiter
	repo       *repositories.RunRepository
	logger     *log.Logger
	limit      int
	run        *models.Run
	progress   chan<- ProgressUpdate
}

// OrchestratorOpts contains dependencies for creating an Orchestrator.
type OrchestratorOpts struct {
	Saver    *fixtures.Saver
	Limiter  Waiter                      // Paces API calls; required
	Repo     *repositories.RunRepository // Optional run persistence
	Logger   *log.Logger
	Limit    int                   // Max elements kept from list responses
	Progress chan<- ProgressUpdate // Optional progress channel
}

// NewOrchestrator creates an Orchestrator with the provided dependencies.
func NewOrchestrator(opts OrchestratorOpts) *Orchestrator {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Limit <= 0 {
		opts.Limit = 1
	}

	return &Orchestrator{
		stabilizer: fixtures.NewStabilizer(),
		saver:      opts.Saver,
		typeMap:    fixtures.NewTypeMap(),
		limiter:    opts.Limiter,
		repo:       opts.Repo,
		logger:     opts.Logger,
		limit:      opts.Limit,
		progress:   opts.Progress,
	}
}

// TypeMap exposes the collected type mappings.
func (o *Orchestrator) TypeMap() *fixtures.TypeMap { return o.typeMap }

// sendProgress sends a progress update through the channel without blocking.
func (o *Orchestrator) sendProgress(update ProgressUpdate) {
	if o.progress == nil {
		return
	}
	select {
	case o.progress <- update:
	default:
	}
}

// Process implements Processor.
//
// Errors from the API call or the save are counted and recorded on the
// run but returned to the caller only for inspection; collection always
// continues with the next fixture.
func (o *Orchestrator) Process(ctx context.Context, category fixtures.Category, name string, call APICall) (any, error) {
	o.logger.Info("fetching fixture", "category", string(category), "name", name)
	o.sendProgress(processFixtureUpdate(category, name))

	if err := o.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	response, err := call(ctx)
	if err != nil {
		o.logger.Error("failed to fetch fixture", "category", string(category), "name", name, "error", err)
		o.recordFailure(category, name, err)
		return nil, err
	}

	if isNilOrEmpty(response) {
		o.logger.Warn("no data returned", "category", string(category), "name", name)
		o.recordFailure(category, name, shared.ErrNoData)
		return nil, shared.ErrNoData
	}

	response = truncateList(response, o.limit)

	o.typeMap.Record(category, name, response)

	decoded, err := fixtures.Decode(response)
	if err != nil {
		o.logger.Error("failed to serialize fixture", "category", string(category), "name", name, "error", err)
		o.recordFailure(category, name, err)
		return nil, err
	}

	data := fixtures.Normalize(o.stabilizer.Stabilize(decoded))

	status, diff, err := o.saver.Save(category, name, data)
	if err != nil {
		o.logger.Error("failed to save fixture", "category", string(category), "name", name, "error", err)
		o.recordFailure(category, name, err)
		return nil, err
	}

	o.recordOutcome(category, name, status, diff)
	o.sendProgress(fixtureDoneUpdate(category, name, status))
	return data, nil
}

// RunAll verifies the session, collects every requested category, generates
// the type-mapping file, logs the diff summary, and persists the run.
//
// categories may be nil to collect all of them.
func (o *Orchestrator) RunAll(ctx context.Context, client *niconico.Client, samples Samples, typeMapPath string, categories []fixtures.Category) (*models.Run, error) {
	o.sendProgress(verifySessionUpdate())
	o.logger.Info("verifying session credential")

	user, err := client.VerifySession(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Info("session verified", "user", user.Nickname)

	o.run = &models.Run{
		ID:        shared.GenerateID(),
		StartedAt: time.Now(),
	}
	if o.repo != nil {
		if err := o.repo.Create(o.run); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
	}

	c := NewCollector(o, client, samples, o.limit, o.logger)
	c.SetProgress(o.sendProgress)
	if err := c.Collect(ctx, categories); err != nil {
		return nil, err
	}

	o.sendProgress(generateTypeMapUpdate(o.typeMap.Len()))
	if err := o.typeMap.Generate(ctx, typeMapPath, o.logger); err != nil {
		o.logger.Error("failed to generate type mappings", "error", err)
	}

	o.saver.Tracker().LogSummary()

	if o.repo != nil {
		if err := o.repo.Finish(o.run); err != nil {
			o.logger.Warn("failed to finalize run record", "error", err)
		}
	}

	return o.run, nil
}

func (o *Orchestrator) recordOutcome(category fixtures.Category, name string, status fixtures.Status, diff string) {
	if o.run == nil {
		return
	}

	o.run.Total++
	switch status {
	case fixtures.StatusNew:
		o.run.NewCount++
	case fixtures.StatusChanged:
		o.run.ChangedCount++
	case fixtures.StatusUnchanged:
		o.run.UnchangedCount++
	}

	o.persistFixture(category, name, string(status), diff, "")
}

func (o *Orchestrator) recordFailure(category fixtures.Category, name string, err error) {
	if o.run == nil {
		return
	}

	o.run.Total++
	o.run.FailedCount++
	o.persistFixture(category, name, string(fixtures.StatusFailed), "", err.Error())
}

func (o *Orchestrator) persistFixture(category fixtures.Category, name, status, diff, errMsg string) {
	if o.repo == nil {
		return
	}

	path := string(category) + "/" + name + ".json"
	record := &models.RunFixture{
		RunID:    o.run.ID,
		Path:     path,
		TypeName: o.typeMap.TypeName(path),
		Status:   status,
		Diff:     diff,
		Error:    errMsg,
	}
	if err := o.repo.AddFixture(record); err != nil {
		o.logger.Warn("failed to persist fixture record", "path", path, "error", err)
	}
}

// truncateList caps slice responses at limit elements, leaving other
// response shapes untouched.
func truncateList(response any, limit int) any {
	v := reflect.ValueOf(response)
	if v.Kind() == reflect.Slice && v.Len() > limit {
		return v.Slice(0, limit).Interface()
	}
	return response
}

// isNilOrEmpty reports whether a response carries no data at all: a nil
// value, a typed nil pointer, or an empty slice.
func isNilOrEmpty(response any) bool {
	if response == nil {
		return true
	}
	v := reflect.ValueOf(response)
	switch v.Kind() {
	case reflect.Pointer:
		return v.IsNil()
	case reflect.Slice:
		return v.Len() == 0
	}
	return false
}
