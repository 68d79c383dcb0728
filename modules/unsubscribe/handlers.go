package unsubscribe

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/oneclick/handler"
	"github.com/dmitrymomot/oneclick/pkg/jwt"
	"github.com/dmitrymomot/oneclick/pkg/logger"
)

// Error codes beyond the jwt.Reason names.
const (
	CodeWrongPurpose = "WrongPurpose"
	CodeMissingEmail = "MissingEmail"
	CodeStoreFailure = "StoreFailure"
)

// preview shows which address a link belongs to. The claims are not verified,
// so nothing here changes state.
func (m *Module) preview(w http.ResponseWriter, r *http.Request) {
	var email any
	if claims := jwt.DecodeUnsafe(r.URL.Query().Get(TokenParam)); claims != nil {
		if addr := claims.Email(); addr != "" {
			email = addr
		}
	}
	m.render(w, r, handler.JSON(map[string]any{"email": email}))
}

func (m *Module) unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, ok := jwt.GetClaims(ctx)
	if !ok {
		m.renderRejection(w, r, jwt.ReasonVerificationError)
		return
	}

	if claims.Subject() != Purpose {
		m.metrics.verification(ResultWrongPurpose)
		m.log.WarnContext(ctx, "token rejected", logger.Reason(CodeWrongPurpose))
		m.render(w, r, handler.JSONError(http.StatusForbidden, CodeWrongPurpose, "token is not an unsubscribe token"))
		return
	}

	email := claims.Email()
	if email == "" {
		m.metrics.verification(ResultMissingEmail)
		m.log.WarnContext(ctx, "token rejected", logger.Reason(CodeMissingEmail))
		m.render(w, r, handler.JSONError(http.StatusBadRequest, CodeMissingEmail, "token carries no email"))
		return
	}

	if err := m.store.Add(ctx, email); err != nil {
		m.metrics.verification(ResultStoreFailure)
		m.log.ErrorContext(ctx, "failed to record unsubscribe", logger.Email(email), logger.Error(err))
		m.render(w, r, handler.JSONError(http.StatusInternalServerError, CodeStoreFailure, "could not record unsubscribe"))
		return
	}

	m.metrics.verification(ResultValid)
	m.log.InfoContext(ctx, "unsubscribe accepted", logger.Email(email))
	m.notify(ctx, email)

	m.render(w, r, handler.JSON(map[string]any{"email": email, "unsubscribed": true}))
}

// notify reports failures to the log only; the unsubscribe already happened.
func (m *Module) notify(ctx context.Context, email string) {
	if m.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.notifyTimeout)
	defer cancel()

	err := m.notifier.Notify(ctx, email)
	m.metrics.notification(err)
	if err != nil {
		m.log.WarnContext(ctx, "unsubscribe notification failed", logger.Email(email), logger.Error(err))
	}
}

func (m *Module) onReject(r *http.Request, reason jwt.Reason) {
	m.metrics.rejected(reason)
	level := slog.LevelWarn
	if reason == jwt.ReasonVerificationError {
		level = slog.LevelError
	}
	m.log.Log(r.Context(), level, "token rejected", logger.Reason(string(reason)))
}

func (m *Module) renderRejection(w http.ResponseWriter, r *http.Request, reason jwt.Reason) {
	status, msg := jwt.StatusForReason(reason)
	m.render(w, r, handler.JSONError(status, string(reason), msg))
}

func (m *Module) render(w http.ResponseWriter, r *http.Request, resp handler.Response) {
	if err := resp.Render(w, r); err != nil {
		m.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
	}
}
