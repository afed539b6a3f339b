package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"session-service/internal/config"
	"session-service/internal/models"
	"session-service/internal/pkg/hash"
	"session-service/internal/storage"
	"session-service/internal/tokens"
	"session-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Хэшер с ослабленными параметрами argon2 — только для тестов.
func testHasher() Hasher {
	return hash.NewWithParams(hash.Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
}

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:        "unit-access-secret",
		RefreshSecret:       "unit-refresh-secret",
		Algorithm:           "HS256",
		AccessTokenTTL:      15 * time.Minute,
		RefreshTokenTTLDays: 1,
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	signer, err := tokens.NewSigner("HS256")
	require.NoError(t, err)
	svc := New(st, signer, testHasher(), testAuthCfg())
	return svc, st, ctrl
}

// captureSession возвращает DoAndReturn-колбэк, который сохраняет переданную
// сессию и присваивает ей суррогатный id.
func captureSession(dst *models.RefreshSession, id int64) func(context.Context, *models.RefreshSession) error {
	return func(_ context.Context, session *models.RefreshSession) error {
		session.ID = id
		*dst = *session
		return nil
	}
}

func TestIssuePair_And_VerifyAccess_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	var saved models.RefreshSession

	st.EXPECT().SubjectExists(gomock.Any(), int64(42)).Return(true, nil)
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&saved, 1))

	pair, err := svc.IssuePair(ctx, 42, SessionMeta{DeviceInfo: "cli/1.0", IPAddress: "10.0.0.1"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.Equal(t, "Bearer", pair.TokenType)
	require.WithinDuration(t, time.Now().Add(svc.cfg.AccessTokenTTL), pair.AccessExpiresAt, 2*time.Second)

	// Сессия сохранена с метаданными и хэшем, а не сырым токеном.
	require.Equal(t, int64(42), saved.SubjectID)
	require.Equal(t, "cli/1.0", saved.DeviceInfo)
	require.Equal(t, "10.0.0.1", saved.IPAddress)
	require.NotEqual(t, pair.RefreshToken, saved.SecretHash)
	require.NotEmpty(t, saved.TokenID)
	require.WithinDuration(t, time.Now().Add(svc.cfg.RefreshTTL()), saved.ExpiresAt, 2*time.Second)

	subjectID, err := svc.VerifyAccessToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(42), subjectID)
}

func TestIssuePair_UnknownSubject(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SubjectExists(gomock.Any(), int64(404)).Return(false, nil)

	_, err := svc.IssuePair(context.Background(), 404, SessionMeta{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownSubject)
}

func TestIssuePair_SubjectLookupError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SubjectExists(gomock.Any(), int64(42)).Return(false, errors.New("db down"))

	_, err := svc.IssuePair(context.Background(), 42, SessionMeta{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnknownSubject)
}

func TestIssueRefreshToken_CollisionRetry(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	var saved models.RefreshSession

	// Первая попытка — коллизия token_id, вторая — успех.
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&saved, 1))

	token, err := svc.IssueRefreshToken(context.Background(), 42, SessionMeta{})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, int64(42), saved.SubjectID)
}

func TestIssueRefreshToken_CollisionExhausted(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists).Times(5)

	_, err := svc.IssueRefreshToken(context.Background(), 42, SessionMeta{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSessionConflict)
}

func TestIssueRefreshToken_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.IssueRefreshToken(context.Background(), 42, SessionMeta{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSessionConflict)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	cfg := testAuthCfg()
	cfg.AccessTokenTTL = -10 * time.Second
	svc.cfg = cfg

	token, _, err := svc.IssueAccessToken(context.Background(), 42)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAccessTokenExpired)
}

func TestVerifyAccessToken_Invalid(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := svc.VerifyAccessToken(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidAccessToken)

	// Refresh-токен не проходит как access: секреты независимы.
	refresh, _, _, err := svc.signer.Issue(42, time.Minute, svc.cfg.RefreshSecret)
	require.NoError(t, err)
	_, err = svc.VerifyAccessToken(ctx, refresh)
	require.ErrorIs(t, err, ErrInvalidAccessToken)
}

func TestVerifyRefreshToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	var saved models.RefreshSession

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&saved, 1))

	token, err := svc.IssueRefreshToken(ctx, 42, SessionMeta{})
	require.NoError(t, err)

	st.EXPECT().SessionsBySubject(gomock.Any(), int64(42)).
		Return([]models.RefreshSession{saved}, nil)

	subjectID, err := svc.VerifyRefreshToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, int64(42), subjectID)
}

func TestVerifyRefreshToken_SessionNotFound(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	var saved models.RefreshSession

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&saved, 1))

	token, err := svc.IssueRefreshToken(ctx, 42, SessionMeta{})
	require.NoError(t, err)

	t.Run("no sessions at all", func(t *testing.T) {
		st.EXPECT().SessionsBySubject(gomock.Any(), int64(42)).
			Return(nil, nil)

		_, err := svc.VerifyRefreshToken(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("token_id mismatch", func(t *testing.T) {
		other := saved
		other.TokenID = "different-jti"

		st.EXPECT().SessionsBySubject(gomock.Any(), int64(42)).
			Return([]models.RefreshSession{other}, nil)

		_, err := svc.VerifyRefreshToken(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("digest mismatch", func(t *testing.T) {
		other := saved
		digest, err := svc.hasher.Hash("another-token")
		require.NoError(t, err)
		other.SecretHash = digest

		st.EXPECT().SessionsBySubject(gomock.Any(), int64(42)).
			Return([]models.RefreshSession{other}, nil)

		_, err = svc.VerifyRefreshToken(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestVerifyRefreshToken_Expired(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	cfg := testAuthCfg()
	cfg.RefreshTokenTTLDays = 0
	cfg.RefreshTokenTTL = -10 * time.Second
	svc.cfg = cfg

	token, _, _, err := svc.signer.Issue(42, cfg.RefreshTTL(), cfg.RefreshSecret)
	require.NoError(t, err)

	_, err = svc.VerifyRefreshToken(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRefreshTokenExpired)
}

func TestVerifyRefreshToken_Invalid(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := svc.VerifyRefreshToken(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidRefreshToken)

	// Access-токен не проходит как refresh.
	access, _, err := svc.IssueAccessToken(ctx, 42)
	require.NoError(t, err)
	_, err = svc.VerifyRefreshToken(ctx, access)
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRotate_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	var first, second models.RefreshSession

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&first, 1))

	oldToken, err := svc.IssueRefreshToken(ctx, 42, SessionMeta{})
	require.NoError(t, err)

	// Ротация: матч сессии, условное удаление, выпуск новой пары.
	st.EXPECT().SessionsBySubject(gomock.Any(), int64(42)).
		Return([]models.RefreshSession{first}, nil)
	st.EXPECT().DeleteSession(gomock.Any(), int64(1)).Return(true, nil)
	st.EXPECT().SubjectExists(gomock.Any(), int64(42)).Return(true, nil)
	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&second, 2))

	pair, err := svc.Rotate(ctx, oldToken, SessionMeta{})
	require.NoError(t, err)

	// Новый refresh-токен никогда не равен потреблённому.
	require.NotEqual(t, oldToken, pair.RefreshToken)
	require.NotEqual(t, first.TokenID, second.TokenID)
}

// Кто не успел удалить строку — получает ErrSessionNotFound, а не пару:
// ровно один победитель на конкурентных ротациях одного токена.
func TestRotate_LostRace(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	var saved models.RefreshSession

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&saved, 1))

	token, err := svc.IssueRefreshToken(ctx, 42, SessionMeta{})
	require.NoError(t, err)

	st.EXPECT().SessionsBySubject(gomock.Any(), int64(42)).
		Return([]models.RefreshSession{saved}, nil)
	// Строку уже удалил конкурент: ноль затронутых строк.
	st.EXPECT().DeleteSession(gomock.Any(), int64(1)).Return(false, nil)

	_, err = svc.Rotate(ctx, token, SessionMeta{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSessionNotFound)
	// Выпуска новой пары не было: SubjectExists/SaveSession не вызывались.
}

func TestRotate_DeleteError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	var saved models.RefreshSession

	st.EXPECT().SaveSession(gomock.Any(), gomock.Any()).DoAndReturn(captureSession(&saved, 1))

	token, err := svc.IssueRefreshToken(ctx, 42, SessionMeta{})
	require.NoError(t, err)

	st.EXPECT().SessionsBySubject(gomock.Any(), int64(42)).
		Return([]models.RefreshSession{saved}, nil)
	st.EXPECT().DeleteSession(gomock.Any(), int64(1)).Return(false, errors.New("db down"))

	_, err = svc.Rotate(ctx, token, SessionMeta{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestRevokeSession_Idempotent(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().DeleteSession(gomock.Any(), int64(7)).Return(true, nil)
	st.EXPECT().DeleteSession(gomock.Any(), int64(7)).Return(false, nil)

	revoked, err := svc.RevokeSession(ctx, 7)
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, err = svc.RevokeSession(ctx, 7)
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestRevokeAllSessions(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().DeleteSubjectSessions(gomock.Any(), int64(42)).Return(true, nil)
	revoked, err := svc.RevokeAllSessions(ctx, 42)
	require.NoError(t, err)
	require.True(t, revoked)

	st.EXPECT().DeleteSubjectSessions(gomock.Any(), int64(42)).Return(false, nil)
	revoked, err = svc.RevokeAllSessions(ctx, 42)
	require.NoError(t, err)
	require.False(t, revoked)
}
