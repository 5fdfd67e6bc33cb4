package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	appcatalog "github.com/breightend/mykonos-inventory/application/catalog"
	"github.com/breightend/mykonos-inventory/constant"
	variantmocks "github.com/breightend/mykonos-inventory/mocks/repository/variant"
	"github.com/breightend/mykonos-inventory/model"
	cerr "github.com/breightend/mykonos-inventory/utils/errors"
)

func TestCatalogApp_Resolve(t *testing.T) {
	type fields struct {
		variantRepo *variantmocks.VariantRepository
	}
	tests := []struct {
		name       string
		fields     fields
		variantID  uint64
		mockCall   func(f fields)
		wantKind   constant.VariantKind
		wantLedger uint64
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:      "web variant wins without consulting the warehouse table",
			fields:    fields{variantRepo: variantmocks.NewVariantRepository(t)},
			variantID: 10,
			mockCall: func(f fields) {
				f.variantRepo.On("GetWebVariant", mock.Anything, uint64(10)).Return(&model.WebVariant{
					ID: 10, ProductID: 1, SizeID: 2, ColorID: 3, Active: true,
				}, nil).Once()
			},
			wantKind:   constant.VariantKindWeb,
			wantLedger: 10,
		},
		{
			name:      "legacy id maps to the web counterpart by product, size and color",
			fields:    fields{variantRepo: variantmocks.NewVariantRepository(t)},
			variantID: 900,
			mockCall: func(f fields) {
				f.variantRepo.On("GetWebVariant", mock.Anything, uint64(900)).Return(nil, nil).Once()
				f.variantRepo.On("GetWarehouseVariant", mock.Anything, uint64(900)).Return(&model.WarehouseVariant{
					ID: 900, ProductID: 1, SizeID: 2, ColorID: 3, BranchID: 4, Quantity: 8,
				}, nil).Once()
				f.variantRepo.On("GetWebVariantByKey", mock.Anything, uint64(1), uint64(2), uint64(3)).Return(&model.WebVariant{
					ID: 77, ProductID: 1, SizeID: 2, ColorID: 3,
				}, nil).Once()
			},
			wantKind:   constant.VariantKindLegacyWarehouse,
			wantLedger: 77,
		},
		{
			name:      "legacy id without a web counterpart keeps zero ledger id",
			fields:    fields{variantRepo: variantmocks.NewVariantRepository(t)},
			variantID: 901,
			mockCall: func(f fields) {
				f.variantRepo.On("GetWebVariant", mock.Anything, uint64(901)).Return(nil, nil).Once()
				f.variantRepo.On("GetWarehouseVariant", mock.Anything, uint64(901)).Return(&model.WarehouseVariant{
					ID: 901, ProductID: 5, SizeID: 6, ColorID: 7, BranchID: 4, Quantity: 2,
				}, nil).Once()
				f.variantRepo.On("GetWebVariantByKey", mock.Anything, uint64(5), uint64(6), uint64(7)).Return(nil, nil).Once()
			},
			wantKind:   constant.VariantKindLegacyWarehouse,
			wantLedger: 0,
		},
		{
			name:      "id missing from both tables resolves to not_found, not an error",
			fields:    fields{variantRepo: variantmocks.NewVariantRepository(t)},
			variantID: 404,
			mockCall: func(f fields) {
				f.variantRepo.On("GetWebVariant", mock.Anything, uint64(404)).Return(nil, nil).Once()
				f.variantRepo.On("GetWarehouseVariant", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantKind:   constant.VariantKindNotFound,
			wantLedger: 0,
		},
		{
			name:      "error: web lookup fails",
			fields:    fields{variantRepo: variantmocks.NewVariantRepository(t)},
			variantID: 10,
			mockCall: func(f fields) {
				f.variantRepo.On("GetWebVariant", mock.Anything, uint64(10)).Return(nil, errors.New("db error")).Once()
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
			app := appcatalog.NewCatalogApp(tt.fields.variantRepo)

			got, err := app.Resolve(context.Background(), tt.variantID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Kind != tt.wantKind {
				t.Fatalf("Resolve() Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.LedgerVariantID != tt.wantLedger {
				t.Fatalf("Resolve() LedgerVariantID = %v, want %v", got.LedgerVariantID, tt.wantLedger)
			}
		})
	}
}
