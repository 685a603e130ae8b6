package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.Status())
	assert.Equal(t, http.StatusBadRequest, KindPolicy.Status())
	assert.Equal(t, http.StatusForbidden, KindAuthorization.Status())
	assert.Equal(t, http.StatusNotFound, KindNotFound.Status())
	assert.Equal(t, http.StatusConflict, KindConflict.Status())
}

func TestIsBusinessSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create exchange: %w", ErrConflict("exchange_already_pending"))

	assert.True(t, IsBusiness(err, "exchange_already_pending"))
	assert.False(t, IsBusiness(err, "stale_state"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrPolicy("cross_day_not_allowed"), http.StatusBadRequest, "cross_day_not_allowed"},
		{ErrForbidden("not_a_participant"), http.StatusForbidden, "not_a_participant"},
		{ErrNotFound("booking_not_found"), http.StatusNotFound, "booking_not_found"},
		{ErrConflict("stale_state"), http.StatusConflict, "stale_state"},
		{errors.New("connection reset"), http.StatusInternalServerError, "exchange_failed"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Respond(c, zap.NewNop(), "exchange_failed", tc.err)

		assert.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), `"error_code":"`+tc.code+`"`)
	}
}
