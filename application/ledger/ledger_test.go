package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appledger "github.com/breightend/mykonos-inventory/application/ledger"
	"github.com/breightend/mykonos-inventory/constant"
	ledgermocks "github.com/breightend/mykonos-inventory/mocks/repository/ledger"
	redismocks "github.com/breightend/mykonos-inventory/mocks/repository/redis"
	txmocks "github.com/breightend/mykonos-inventory/mocks/repository/tx"
	variantmocks "github.com/breightend/mykonos-inventory/mocks/repository/variant"
	"github.com/breightend/mykonos-inventory/model"
	cerr "github.com/breightend/mykonos-inventory/utils/errors"
)

func TestLedgerApp_Assign(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		ledgerRepo  *ledgermocks.LedgerRepository
		variantRepo *variantmocks.VariantRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx       context.Context
		variantID uint64
		branchID  uint64
		quantity  int64
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:      txmocks.NewTxRepository(t),
			ledgerRepo:  ledgermocks.NewLedgerRepository(t),
			variantRepo: variantmocks.NewVariantRepository(t),
			redisRepo:   redismocks.NewRepository(t),
		}
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: absolute assignment recorded and hint refreshed",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  2,
				quantity:  10,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.ledgerRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(7), uint64(2), int64(10)).Return(nil).Once()
				f.variantRepo.On("RefreshDisplayedStockTx", mock.Anything, tx, uint64(7)).Return(nil).Once()

				f.ledgerRepo.On("TotalAssigned", mock.Anything, uint64(7)).Return(int64(10), nil).Once()
				f.redisRepo.On("SetDisplayedStock", mock.Anything, uint64(7), int64(10)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:   "success: assigning zero clears the branch",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  2,
				quantity:  0,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.ledgerRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(7), uint64(2), int64(0)).Return(nil).Once()
				f.variantRepo.On("RefreshDisplayedStockTx", mock.Anything, tx, uint64(7)).Return(nil).Once()

				f.ledgerRepo.On("TotalAssigned", mock.Anything, uint64(7)).Return(int64(0), nil).Once()
				f.redisRepo.On("DeleteDisplayedStock", mock.Anything, uint64(7)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:   "error: negative assignment rejected before any write",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  2,
				quantity:  -1,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidQuantity,
		},
		{
			name:   "error: upsert fails and the transaction rolls back",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  2,
				quantity:  5,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.ledgerRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(7), uint64(2), int64(5)).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.ledgerRepo, tt.fields.variantRepo, tt.fields.redisRepo)

			err := app.Assign(tt.args.ctx, tt.args.variantID, tt.args.branchID, tt.args.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Assign() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestLedgerApp_Adjust(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		ledgerRepo  *ledgermocks.LedgerRepository
		variantRepo *variantmocks.VariantRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx       context.Context
		variantID uint64
		branchID  uint64
		delta     int64
	}
	newFields := func(t *testing.T) fields {
		return fields{
			txRepo:      txmocks.NewTxRepository(t),
			ledgerRepo:  ledgermocks.NewLedgerRepository(t),
			variantRepo: variantmocks.NewVariantRepository(t),
			redisRepo:   redismocks.NewRepository(t),
		}
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: delta applied to an existing assignment",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  2,
				delta:     -2,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.ledgerRepo.On("GetAssignmentForUpdateTx", mock.Anything, tx, uint64(7), uint64(2)).Return(&model.BranchAssignment{
					ID: 10, VariantID: 7, BranchID: 2, AssignedQuantity: 5,
				}, nil).Once()
				f.ledgerRepo.On("AddToAssignmentTx", mock.Anything, tx, uint64(10), int64(-2)).Return(nil).Once()
				f.variantRepo.On("RefreshDisplayedStockTx", mock.Anything, tx, uint64(7)).Return(nil).Once()

				f.ledgerRepo.On("TotalAssigned", mock.Anything, uint64(7)).Return(int64(3), nil).Once()
				f.redisRepo.On("SetDisplayedStock", mock.Anything, uint64(7), int64(3)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:   "success: positive delta creates the missing row",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  3,
				delta:     4,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.ledgerRepo.On("GetAssignmentForUpdateTx", mock.Anything, tx, uint64(7), uint64(3)).Return(nil, nil).Once()
				f.ledgerRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(7), uint64(3), int64(4)).Return(nil).Once()
				f.variantRepo.On("RefreshDisplayedStockTx", mock.Anything, tx, uint64(7)).Return(nil).Once()

				f.ledgerRepo.On("TotalAssigned", mock.Anything, uint64(7)).Return(int64(4), nil).Once()
				f.redisRepo.On("SetDisplayedStock", mock.Anything, uint64(7), int64(4)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:   "error: delta would drive the assignment negative",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  2,
				delta:     -8,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.ledgerRepo.On("GetAssignmentForUpdateTx", mock.Anything, tx, uint64(7), uint64(2)).Return(&model.BranchAssignment{
					ID: 10, VariantID: 7, BranchID: 2, AssignedQuantity: 5,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNegativeResult,
		},
		{
			name:   "error: negative delta on a missing row",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  9,
				delta:     -1,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.ledgerRepo.On("GetAssignmentForUpdateTx", mock.Anything, tx, uint64(7), uint64(9)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNegativeResult,
		},
		{
			name:   "error: lock fails",
			fields: newFields(t),
			args: args{
				ctx:       context.Background(),
				variantID: 7,
				branchID:  2,
				delta:     1,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.ledgerRepo.On("GetAssignmentForUpdateTx", mock.Anything, tx, uint64(7), uint64(2)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(tt.fields.txRepo, tt.fields.ledgerRepo, tt.fields.variantRepo, tt.fields.redisRepo)

			err := app.Adjust(tt.args.ctx, tt.args.variantID, tt.args.branchID, tt.args.delta)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Adjust() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestLedgerApp_TotalAssigned(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	ledgerRepo := ledgermocks.NewLedgerRepository(t)
	variantRepo := variantmocks.NewVariantRepository(t)
	redisRepo := redismocks.NewRepository(t)

	ledgerRepo.On("TotalAssigned", mock.Anything, uint64(7)).Return(int64(12), nil).Once()

	app := appledger.NewLedgerApp(txRepo, ledgerRepo, variantRepo, redisRepo)
	got, err := app.TotalAssigned(context.Background(), 7)
	if err != nil {
		t.Fatalf("TotalAssigned() error = %v", err)
	}
	if got != 12 {
		t.Fatalf("TotalAssigned() = %v, want 12", got)
	}
}

func TestLedgerApp_DisplayedStock(t *testing.T) {
	t.Run("cached hint served without touching the database", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		ledgerRepo := ledgermocks.NewLedgerRepository(t)
		variantRepo := variantmocks.NewVariantRepository(t)
		redisRepo := redismocks.NewRepository(t)

		redisRepo.On("GetDisplayedStock", mock.Anything, uint64(7)).Return(int64(9), true, nil).Once()

		app := appledger.NewLedgerApp(txRepo, ledgerRepo, variantRepo, redisRepo)
		got, err := app.DisplayedStock(context.Background(), 7)
		if err != nil {
			t.Fatalf("DisplayedStock() error = %v", err)
		}
		if got != 9 {
			t.Fatalf("DisplayedStock() = %v, want 9", got)
		}
	})

	t.Run("cache miss falls back to the ledger total", func(t *testing.T) {
		txRepo := txmocks.NewTxRepository(t)
		ledgerRepo := ledgermocks.NewLedgerRepository(t)
		variantRepo := variantmocks.NewVariantRepository(t)
		redisRepo := redismocks.NewRepository(t)

		redisRepo.On("GetDisplayedStock", mock.Anything, uint64(7)).Return(int64(0), false, nil).Once()
		ledgerRepo.On("TotalAssigned", mock.Anything, uint64(7)).Return(int64(6), nil).Once()

		app := appledger.NewLedgerApp(txRepo, ledgerRepo, variantRepo, redisRepo)
		got, err := app.DisplayedStock(context.Background(), 7)
		if err != nil {
			t.Fatalf("DisplayedStock() error = %v", err)
		}
		if got != 6 {
			t.Fatalf("DisplayedStock() = %v, want 6", got)
		}
	})
}

func TestLedgerApp_PerBranch(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	ledgerRepo := ledgermocks.NewLedgerRepository(t)
	variantRepo := variantmocks.NewVariantRepository(t)
	redisRepo := redismocks.NewRepository(t)

	ledgerRepo.On("PerBranch", mock.Anything, uint64(7)).Return([]model.BranchStock{
		{BranchID: 1, Quantity: 5},
		{BranchID: 2, Quantity: 2},
	}, nil).Once()

	app := appledger.NewLedgerApp(txRepo, ledgerRepo, variantRepo, redisRepo)
	got, err := app.PerBranch(context.Background(), 7)
	if err != nil {
		t.Fatalf("PerBranch() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("PerBranch() len = %v, want 2", len(got))
	}
	if got[0].BranchID != 1 || got[0].Quantity != 5 {
		t.Fatalf("PerBranch()[0] = %+v", got[0])
	}
}
