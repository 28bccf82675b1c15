package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/colecostanza/Anki-Automated-Quizzes/internal/models"
	mock_repository "github.com/colecostanza/Anki-Automated-Quizzes/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *ResultsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &ResultsR{db: db}
}

func TestResultsR_AddQuizResult(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		record models.ResultRecord
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx: context.Background(),
				record: models.ResultRecord{
					Deck:       "spanish",
					CardID:     7,
					SessionID:  "s-1",
					IsCorrect:  true,
					AnsweredAt: time.Now(),
				},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
			args: args{
				ctx:    context.Background(),
				record: models.ResultRecord{},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
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

			resultsR := newResultsMock(t, ctrl, tt.f)

			err := resultsR.AddQuizResult(tt.args.ctx, tt.args.record)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestResultsR_QuizStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.QuizStats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						stats := dest.(*models.QuizStats)
						stats.TotalCount = 10
						stats.RightCount = 7
						return nil
					})
			},
			want: models.QuizStats{
				TotalCount: 10,
				RightCount: 7,
				WrongCount: 3,
			},
			wantErr: false,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			want:    models.QuizStats{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			resultsR := newResultsMock(t, ctrl, tt.f)

			got, err := resultsR.QuizStats(context.Background(), "spanish")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.TotalCount, got.TotalCount)
			assert.Equal(t, tt.want.RightCount, got.RightCount)
			assert.Equal(t, tt.want.WrongCount, got.WrongCount)
		})
	}
}
