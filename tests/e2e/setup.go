//go:build e2e

package e2e

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/facility"
	"facility-booking/internal/handler"
	"facility-booking/internal/handler/api"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/infra/sessionstore"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/pkg/jwt"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
)

// SharedSuite wires the full HTTP stack over an in-memory booking store.
// Every test gets a fresh router and store so sessions never leak across tests.
type SharedSuite struct {
	suite.Suite
	Config config.Config
	Router *gin.Engine
	Store  *sessionstore.MemoryStore
	Clock  *clock.MockClock
}

func (s *SharedSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.Config = config.NewTestConfig()
	s.Store = sessionstore.NewMemoryStore()
	s.Clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	engine := booking.NewEngine(facility.NewDefaultCatalog(), s.Clock)
	bookingCommands := commands.NewBookingCommands(s.Store, engine)
	bookingQueries := queries.NewBookingQueries(s.Store)
	bookingHandler := api.NewBookingHandler(bookingCommands, bookingQueries)

	tokens := jwt.NewService(s.Config.Session.Secret, s.Config.Session.TokenDuration)
	sessionMiddleware := middleware.NewSessionMiddleware(tokens, s.Config)

	s.Router = gin.New()
	handler.NewRouter(s.Router, s.Config, bookingHandler, sessionMiddleware)
}
