// transport/grpc содержит реализацию gRPC-эндпоинтов SessionService.
// Здесь выполняется только маппинг данных и ошибок доменного слоя (service) в gRPC.
// Вся валидация и бизнес-логика находятся в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в коды gRPC:
//   - ErrInvalidRefreshToken/ErrRefreshTokenExpired/ErrSessionNotFound -> codes.Unauthenticated;
//   - ErrUnknownSubject -> codes.NotFound;
//   - иные ошибки -> codes.Internal c единым безопасным сообщением;
//   - ValidateAccessToken при невалидном/просроченном токене НЕ возвращает RPC-ошибку,
//     а отдаёт {Valid:false} (контракт эндпоинта).
//
// Безопасность:
//   - Для codes.Internal наружу не утекают детали внутренних ошибок; подробности должны
//     попадать в логи через интерсепторы на уровне сервера;
//   - Сериализованные токены в логи не пишутся (см. pkg/redact).
package grpc

import (
	"context"
	"errors"
	"log/slog"

	sessionv1 "session-service/gen/go/session"
	"session-service/internal/pkg/log"
	"session-service/internal/pkg/redact"
	"session-service/internal/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SessionServer struct {
	sessionv1.UnimplementedSessionServiceServer
	service *service.Service
}

// NewSessionServer создаёт gRPC-сервер сессий поверх сервисного слоя.
func NewSessionServer(service *service.Service) *SessionServer {
	return &SessionServer{service: service}
}

// IssueTokens выпускает пару токенов для субъекта.
// Маппинг ошибок:
//   - ErrUnknownSubject -> NotFound;
//   - прочее -> Internal (без раскрытия деталей).
func (s *SessionServer) IssueTokens(ctx context.Context, req *sessionv1.IssueTokensRequest) (*sessionv1.TokenPairResponse, error) {
	const op = "transport/grpc/server/IssueTokens"

	pair, err := s.service.IssuePair(ctx, req.GetSubjectId(), service.SessionMeta{
		DeviceInfo: req.GetDeviceInfo(),
		IPAddress:  req.GetIpAddress(),
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownSubject) {
			return nil, status.Errorf(codes.NotFound, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &sessionv1.TokenPairResponse{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		TokenType:       pair.TokenType,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	}, nil
}

// ValidateAccessToken валидирует access-токен (JWT).
// Контракт: при невалидном/просроченном токене RPC-ошибку не возвращает —
// отдаёт {Valid:false} (+Expired для валидной подписи с истёкшим сроком).
// При прочих ошибках — Internal.
func (s *SessionServer) ValidateAccessToken(ctx context.Context, req *sessionv1.ValidateAccessTokenRequest) (*sessionv1.ValidateAccessTokenResponse, error) {
	subjectID, err := s.service.VerifyAccessToken(ctx, req.GetAccessToken())
	if err != nil {
		if errors.Is(err, service.ErrAccessTokenExpired) {
			return &sessionv1.ValidateAccessTokenResponse{Valid: false, Expired: true}, nil
		}

		if errors.Is(err, service.ErrInvalidAccessToken) {
			return &sessionv1.ValidateAccessTokenResponse{Valid: false}, nil
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &sessionv1.ValidateAccessTokenResponse{
		Valid:     true,
		SubjectId: subjectID,
	}, nil
}

// RefreshTokens выпускает новую пару токенов, потребляя refresh-токен.
// Маппинг ошибок:
//   - ErrInvalidRefreshToken/ErrRefreshTokenExpired/ErrSessionNotFound -> Unauthenticated;
//   - прочее -> Internal.
func (s *SessionServer) RefreshTokens(ctx context.Context, req *sessionv1.RefreshTokensRequest) (*sessionv1.TokenPairResponse, error) {
	const op = "transport/grpc/server/RefreshTokens"

	pair, err := s.service.Rotate(ctx, req.GetRefreshToken(), service.SessionMeta{
		DeviceInfo: req.GetDeviceInfo(),
		IPAddress:  req.GetIpAddress(),
	})
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			// Сильный сигнал: криптографически валидный, но уже потреблённый
			// или отозванный токен. Сам токен в лог не попадает.
			log.From(ctx).Warn("refresh_replay_suspected",
				slog.String("op", op),
				slog.String("refresh_token", redact.Token()),
			)
			return nil, status.Errorf(codes.Unauthenticated, "%s: %v", op, err)
		}

		if errors.Is(err, service.ErrInvalidRefreshToken) || errors.Is(err, service.ErrRefreshTokenExpired) {
			return nil, status.Errorf(codes.Unauthenticated, "%s: %v", op, err)
		}

		if errors.Is(err, service.ErrUnknownSubject) {
			return nil, status.Errorf(codes.NotFound, "%s: %v", op, err)
		}

		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &sessionv1.TokenPairResponse{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		TokenType:       pair.TokenType,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	}, nil
}

// RevokeSession отзывает одну сессию по id. Идемпотентна:
// Revoked=false означает, что записи уже не было.
func (s *SessionServer) RevokeSession(ctx context.Context, req *sessionv1.RevokeSessionRequest) (*sessionv1.RevokeSessionResponse, error) {
	revoked, err := s.service.RevokeSession(ctx, req.GetSessionId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &sessionv1.RevokeSessionResponse{Revoked: revoked}, nil
}

// RevokeAllSessions отзывает все сессии субъекта.
func (s *SessionServer) RevokeAllSessions(ctx context.Context, req *sessionv1.RevokeAllSessionsRequest) (*sessionv1.RevokeAllSessionsResponse, error) {
	revoked, err := s.service.RevokeAllSessions(ctx, req.GetSubjectId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	return &sessionv1.RevokeAllSessionsResponse{Revoked: revoked}, nil
}

// ListSessions возвращает живые сессии субъекта.
// Хэши секретов наружу не отдаются.
func (s *SessionServer) ListSessions(ctx context.Context, req *sessionv1.ListSessionsRequest) (*sessionv1.ListSessionsResponse, error) {
	sessions, err := s.service.SessionsBySubject(ctx, req.GetSubjectId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "internal server error")
	}

	resp := &sessionv1.ListSessionsResponse{
		Sessions: make([]*sessionv1.Session, 0, len(sessions)),
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, &sessionv1.Session{
			Id:         session.ID,
			SubjectId:  session.SubjectID,
			DeviceInfo: session.DeviceInfo,
			IpAddress:  session.IPAddress,
			ExpiresAt:  session.ExpiresAt.Unix(),
			CreatedAt:  session.CreatedAt.Unix(),
		})
	}

	return resp, nil
}
