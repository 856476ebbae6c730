//go:build unit

package api_test

import (
	"testing"
	"time"

	"toaigo/internal/domain/booking"
	"toaigo/internal/handler"
	"toaigo/internal/handler/api"
	"toaigo/internal/handler/middleware"
	"toaigo/internal/infra/memstore"
	"toaigo/internal/pkg/clock"
	"toaigo/internal/pkg/config"
	"toaigo/internal/pkg/jwt"
	"toaigo/internal/usecase/commands"
	"toaigo/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// apiEnv wires the full HTTP stack against the real in-memory stores. The
// stores are cheap to seed, so handler tests run the same code paths as
// production instead of mocking the usecase layer.
type apiEnv struct {
	router    *gin.Engine
	tokens    *jwt.Service
	directory *memstore.DirectoryStore
	ledger    *memstore.BookingLedger
	clock     *clock.MockClock
	commands  commands.BookingCommands
}

func newAPIEnv() *apiEnv {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	tokens := jwt.NewService(cfg.JWT.Secret, time.Hour)
	directory := memstore.NewSeededDirectoryStore()
	ledger := memstore.NewBookingLedger()
	mockClock := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	factory := booking.NewFactory(mockClock, booking.NewFixedRateCalculator(cfg.Commission.Rate))

	bookingCommands := commands.NewBookingCommands(directory, ledger, factory)

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		middleware.NewLogger(cfg.Log),
		api.NewAuthHandler(commands.NewAuthCommands(directory, tokens)),
		api.NewUserHandler(queries.NewUserQueries(directory)),
		api.NewMerchantHandler(queries.NewMerchantQueries(directory), commands.NewMerchantCommands(directory), queries.NewBookingQueries(ledger)),
		api.NewBookingHandler(bookingCommands, queries.NewBookingQueries(ledger)),
		api.NewFinancialsHandler(queries.NewFinancialQueries(ledger)),
		middleware.NewAuthMiddleware(tokens),
	)

	return &apiEnv{
		router:    engine,
		tokens:    tokens,
		directory: directory,
		ledger:    ledger,
		clock:     mockClock,
		commands:  bookingCommands,
	}
}

// tokenFor signs a session token for one of the seeded users.
func (e *apiEnv) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	for _, u := range memstore.SeedUsers() {
		if u.ID == userID {
			token, err := e.tokens.GenerateToken(u)
			require.NoError(t, err)
			return token
		}
	}
	t.Fatalf("unknown seed user %q", userID)
	return ""
}

func dinerBookingBody() map[string]any {
	return map[string]any{
		"merchantId": "1",
		"date":       "2026-09-10",
		"time":       "19:00",
		"guests":     2,
		"notes":      "window seat please",
		"serviceIds": []string{"s1-1"},
	}
}
