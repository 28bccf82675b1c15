package repository

import (
	"context"
	"errors"
	"testing"

	mock_repository "github.com/colecostanza/Anki-Automated-Quizzes/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *HistoryR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &HistoryR{db: db}
}

func TestHistoryR_WasAsked(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		deck   string
		cardID int64
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		want    bool
		wantErr bool
	}{
		{
			name: "success: recorded",
			args: args{
				ctx:    context.Background(),
				deck:   "spanish",
				cardID: 42,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*(dest.(*bool)) = true
						return nil
					})
			},
			want:    true,
			wantErr: false,
		},
		{
			name: "success: not recorded",
			args: args{
				ctx:    context.Background(),
				deck:   "spanish",
				cardID: 42,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want:    false,
			wantErr: false,
		},
		{
			name: "db error",
			args: args{
				ctx:    context.Background(),
				deck:   "spanish",
				cardID: 42,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			want:    false,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			historyR := newHistoryMock(t, ctrl, tt.f)

			got, err := historyR.WasAsked(tt.args.ctx, tt.args.deck, tt.args.cardID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryR_AskedCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []int64
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*(dest.(*[]int64)) = []int64{1, 2, 3}
						return nil
					})
			},
			want:    []int64{1, 2, 3},
			wantErr: false,
		},
		{
			name: "success: empty history",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want:    []int64{},
			wantErr: false,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
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

			historyR := newHistoryMock(t, ctrl, tt.f)

			got, err := historyR.AskedCards(context.Background(), "spanish")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryR_RecordAsked(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx     context.Context
		deck    string
		cardIDs []int64
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
				ctx:     context.Background(),
				deck:    "spanish",
				cardIDs: []int64{1, 2, 3},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
			},
			wantErr: false,
		},
		{
			name: "success: nothing to record",
			args: args{
				ctx:     context.Background(),
				deck:    "spanish",
				cardIDs: nil,
			},
			f:       nil,
			wantErr: false,
		},
		{
			name: "failed exec",
			args: args{
				ctx:     context.Background(),
				deck:    "spanish",
				cardIDs: []int64{1},
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

			historyR := newHistoryMock(t, ctrl, tt.f)

			err := historyR.RecordAsked(tt.args.ctx, tt.args.deck, tt.args.cardIDs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestHistoryR_ClearHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
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

			historyR := newHistoryMock(t, ctrl, tt.f)

			err := historyR.ClearHistory(context.Background(), "spanish")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
