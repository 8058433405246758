package ws

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"lookate/config"
	"lookate/internal/delivery"
	httpmiddleware "lookate/internal/delivery/http/middleware"
	"lookate/internal/domain/lifecycle"
	"lookate/internal/domain/service"
	"lookate/internal/errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the push server, injected by Fx.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Hub      *Hub
	TokenSvc service.TokenService
}

type wsServer struct {
	cfg      *config.Config
	logger   *slog.Logger
	hub      *Hub
	tokenSvc service.TokenService
	server   *echo.Echo
	upgrader *websocket.Upgrader
}

// NewServer builds the echo server hosting the websocket endpoint.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(slogecho.New(params.Logger))

	srv := &wsServer{
		cfg:      params.Config,
		logger:   params.Logger,
		hub:      params.Hub,
		tokenSvc: params.TokenSvc,
		server:   echoServer,
		upgrader: &websocket.Upgrader{
			HandshakeTimeout: params.Config.Push.HandshakeTimeout,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}

	echoServer.GET("/ws", srv.handleConnection)

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// handleConnection authenticates the handshake and hands the socket to the
// hub. Auth failure refuses the connection with a 401 before the upgrade.
func (s *wsServer) handleConnection(c echo.Context) error {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		header := c.Request().Header.Get("Authorization")
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenString == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
	}

	userID, _, err := httpmiddleware.IdentityFromToken(s.tokenSvc, tokenString)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	socket, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		return nil
	}

	ctx := c.Request().Context()

	conn, err := NewConnection(ctx, s.hub, socket, userID)
	if err != nil {
		s.logger.Warn("refusing websocket connection",
			slog.String("userID", userID.String()),
			slog.Any("error", err))
		socket.Close()

		return nil
	}

	s.logger.Info("websocket connected", slog.String("userID", userID.String()))

	if err := conn.Handle(ctx); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		s.logger.Debug("websocket closed",
			slog.String("userID", userID.String()),
			slog.Any("error", err))
	}

	return nil
}

func (s *wsServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Push.Port))
	s.logger.Info("Starting push websocket server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve websocket")
	}

	return nil
}

func (s *wsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down push websocket server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
