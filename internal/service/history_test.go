package service

import (
	"context"
	"errors"
	"testing"

	mock_service "github.com/colecostanza/Anki-Automated-Quizzes/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newHistoryServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockHistoryRI)) *HistoryS {
	repo := mock_service.NewMockHistoryRI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewHistoryService(repo, zap.NewNop())
}

func TestHistoryS_AskedSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(*mock_service.MockHistoryRI)
		want map[int64]struct{}
	}{
		{
			name: "success",
			f: func(mhr *mock_service.MockHistoryRI) {
				mhr.EXPECT().AskedCards(gomock.Any(), "spanish").Return([]int64{1, 2}, nil)
			},
			want: map[int64]struct{}{1: {}, 2: {}},
		},
		{
			name: "success: read failure degrades to empty set",
			f: func(mhr *mock_service.MockHistoryRI) {
				mhr.EXPECT().AskedCards(gomock.Any(), "spanish").Return(nil, errors.New("db locked"))
			},
			want: map[int64]struct{}{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			historyService := newHistoryServiceMock(t, ctrl, tt.f)

			got := historyService.AskedSet(context.Background(), "spanish")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryS_RecordThenAsked(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorded := make(map[int64]struct{})

	historyService := newHistoryServiceMock(t, ctrl, func(mhr *mock_service.MockHistoryRI) {
		mhr.EXPECT().RecordAsked(gomock.Any(), "spanish", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, cardIDs []int64) error {
				for _, id := range cardIDs {
					recorded[id] = struct{}{}
				}
				return nil
			}).AnyTimes()
		mhr.EXPECT().WasAsked(gomock.Any(), "spanish", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, cardID int64) (bool, error) {
				_, ok := recorded[cardID]
				return ok, nil
			}).AnyTimes()
		mhr.EXPECT().ClearHistory(gomock.Any(), "spanish").
			DoAndReturn(func(_ context.Context, _ string) error {
				recorded = make(map[int64]struct{})
				return nil
			})
	})

	ctx := context.Background()

	require.NoError(t, historyService.Record(ctx, "spanish", []int64{5}))

	asked, err := historyService.HasBeenAsked(ctx, "spanish", 5)
	require.NoError(t, err)
	assert.True(t, asked)

	// re-recording the same id stays a no-op
	require.NoError(t, historyService.Record(ctx, "spanish", []int64{5}))

	require.NoError(t, historyService.Clear(ctx, "spanish"))

	asked, err = historyService.HasBeenAsked(ctx, "spanish", 5)
	require.NoError(t, err)
	assert.False(t, asked)
}

func TestHistoryS_Record(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockHistoryRI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mhr *mock_service.MockHistoryRI) {
				mhr.EXPECT().RecordAsked(gomock.Any(), "spanish", []int64{1, 2}).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "error: write failure wrapped as warning",
			f: func(mhr *mock_service.MockHistoryRI) {
				mhr.EXPECT().RecordAsked(gomock.Any(), "spanish", []int64{1, 2}).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			historyService := newHistoryServiceMock(t, ctrl, tt.f)

			err := historyService.Record(context.Background(), "spanish", []int64{1, 2})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
