package auth

import (
	"context"
	"strings"

	apperrors "github.com/Tahmid447/Tahmid-English-Club/internal/errors"
	"github.com/Tahmid447/Tahmid-English-Club/internal/logger"
	"github.com/Tahmid447/Tahmid-English-Club/internal/models"
	"github.com/Tahmid447/Tahmid-English-Club/internal/store"
)

// WrongCredentialsMessage is shown to students when a local login fails.
const WrongCredentialsMessage = "ID または パスワード がちがいます"

// Verifier checks email credentials against an external service. It is an
// opaque collaborator: it returns an authorized identity or fails.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (models.UserRecord, error)
}

// Service resolves logins. Identifiers containing "@" go to the external
// verifier; everything else is matched locally against the users collection
// (case-insensitive id, exact password).
type Service struct {
	db       *store.Store
	verifier Verifier
}

// NewService creates an auth Service.
func NewService(db *store.Store, verifier Verifier) *Service {
	return &Service{db: db, verifier: verifier}
}

// Login authenticates and persists the resulting identity as the current
// session. Failures are AUTH_ERROR values whose message is user-facing.
func (s *Service) Login(ctx context.Context, id, pass string) (models.UserRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("auth")

	if strings.Contains(id, "@") {
		user, err := s.verifier.Verify(ctx, id, pass)
		if err != nil {
			log.Warn("external verification failed for %s", id)
			if _, ok := err.(*apperrors.AppError); ok {
				return models.UserRecord{}, err
			}
			return models.UserRecord{}, apperrors.NewAuthError("invalid credentials")
		}
		s.saveSession(ctx, user)
		log.Info("teacher login: %s", user.Email)
		return user, nil
	}

	users := models.DecodeAll[models.UserRecord](s.db.Get(ctx, store.CollectionUsers), nil)
	for _, u := range users {
		if strings.EqualFold(u.ID, id) && u.Pass == pass {
			s.saveSession(ctx, u)
			log.Info("student login: %s", u.ID)
			return u, nil
		}
	}
	log.Warn("login failed for id %q", id)
	return models.UserRecord{}, apperrors.NewAuthError(WrongCredentialsMessage)
}

// Logout clears the persisted session.
func (s *Service) Logout(ctx context.Context) {
	s.db.ClearSession(ctx)
}

// CurrentUser restores the persisted session, if any.
func (s *Service) CurrentUser(ctx context.Context) (models.UserRecord, bool) {
	rec, ok := s.db.LoadSession(ctx)
	if !ok {
		return models.UserRecord{}, false
	}
	user, err := models.Decode[models.UserRecord](rec)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("auth").Warn("malformed session record: %v", err)
		return models.UserRecord{}, false
	}
	return user, true
}

func (s *Service) saveSession(ctx context.Context, user models.UserRecord) {
	rec, err := models.ToRecord(user)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("auth").Warn("failed to encode session: %v", err)
		return
	}
	s.db.SaveSession(ctx, rec)
}

// StaticVerifier authorizes exactly one configured teacher account, standing
// in for the remote credential service.
type StaticVerifier struct {
	Email string
	Pass  string
	Name  string
}

// Verify implements Verifier.
func (v StaticVerifier) Verify(ctx context.Context, email, password string) (models.UserRecord, error) {
	if !strings.EqualFold(email, v.Email) {
		return models.UserRecord{}, apperrors.NewAuthError("not authorized")
	}
	if v.Pass == "" || password != v.Pass {
		return models.UserRecord{}, apperrors.NewAuthError("invalid credentials")
	}
	return models.UserRecord{
		Base:  models.Base{ID: "Teacher"},
		Name:  v.Name,
		Role:  models.RoleTeacher,
		Email: v.Email,
	}, nil
}
