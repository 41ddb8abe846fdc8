package app

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-orchestrator/config"
	"hiring-orchestrator/internal/repository"
	"hiring-orchestrator/pkg/llmprovider"
	"hiring-orchestrator/pkg/log"
)

type stubGenerator struct{}

func (stubGenerator) GenerateContent(context.Context, *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Text: "{}"}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Storage:        config.StorageConfig{Driver: "memory"},
		Memory:         config.MemoryConfig{ShortTermTTL: time.Hour, RecentWindow: 5},
		Conversation:   config.ConversationConfig{MaxHistory: 20},
		Company:        config.CompanyConfig{Name: "Acme"},
		GoogleCalendar: config.GoogleCalendarConfig{Timezone: "UTC"},
		RateLimit:      config.RateLimitConfig{RequestsPerMin: 60},
	}
}

func TestAssemble_Memory(t *testing.T) {
	a, err := Assemble(context.Background(), testConfig(), log.NewNop(), stubGenerator{})
	require.NoError(t, err)
	require.NotNil(t, a.Orchestrator)

	id := a.Orchestrator.StartSession()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, a.Orchestrator.Status(id).SessionID)

	rec, err := a.Repository.Create(context.Background(), repository.KindJobs, repository.Record{"title": "Go Engineer"})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID())
}

func TestAssemble_Toml(t *testing.T) {
	cfg := testConfig()
	cfg.Storage = config.StorageConfig{Driver: "toml", Path: filepath.Join(t.TempDir(), "hiring.toml")}

	a, err := Assemble(context.Background(), cfg, log.NewNop(), stubGenerator{})
	require.NoError(t, err)

	_, err = a.Repository.Create(context.Background(), repository.KindCandidates, repository.Record{"name": "Ada"})
	require.NoError(t, err)
	assert.FileExists(t, cfg.Storage.Path)
}

func TestAssemble_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = "postgres"

	_, err := Assemble(context.Background(), cfg, log.NewNop(), stubGenerator{})
	assert.Error(t, err)
}

func TestAssemble_BadTimezoneFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.GoogleCalendar.Timezone = "Mars/Olympus"

	_, err := Assemble(context.Background(), cfg, log.NewNop(), stubGenerator{})
	assert.NoError(t, err)
}

func TestNewMailer(t *testing.T) {
	ctx := context.Background()
	l := log.NewNop()

	assert.Equal(t, "*capability.logMailer", fmt.Sprintf("%T", newMailer(ctx, config.SMTPConfig{}, l)))
	assert.Equal(t, "*capability.logMailer", fmt.Sprintf("%T", newMailer(ctx, config.SMTPConfig{Host: "smtp.example.com"}, l)), "missing from address falls back")
	assert.Equal(t, "*capability.smtpMailer", fmt.Sprintf("%T", newMailer(ctx, config.SMTPConfig{
		Host: "smtp.example.com", Port: 587, From: "hr@example.com", TLSPolicy: "mandatory",
	}, l)))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseDuration("2s", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
}
