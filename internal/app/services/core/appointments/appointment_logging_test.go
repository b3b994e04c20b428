package appointments

import (
	"context"
	"errors"
	"telecare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAppointmentUsecase_BookTimesRepositoryWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("successful write is logged as a completed operation", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		f := newFixture()
		f.uc.Log = zap.New(core)
		f.scheduler.On("ValidateBooking", mock.Anything, mock.Anything).Return(nil).Once()
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		_, err := f.uc.Book(ctx, patient, bookRequest(""))
		require.NoError(t, err)

		completed := logs.FilterMessage("Operation completed").All()
		require.Len(t, completed, 1)
		fields := completed[0].ContextMap()
		assert.Equal(t, constvars.OperationCreateAppointment, fields[constvars.LoggingOperationKey])
		assert.Equal(t, true, fields[constvars.LoggingSuccessKey])
	})

	t.Run("failed write is logged and nothing is published", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		f := newFixture()
		f.uc.Log = zap.New(core)
		f.scheduler.On("ValidateBooking", mock.Anything, mock.Anything).Return(nil).Once()
		f.repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write conflict")).Once()

		_, err := f.uc.Book(ctx, patient, bookRequest(""))
		require.Error(t, err)

		failed := logs.FilterMessage("Operation failed").All()
		require.Len(t, failed, 1)
		assert.Equal(t, constvars.OperationCreateAppointment, failed[0].ContextMap()[constvars.LoggingOperationKey])
		assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})
}
