package cart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	appcart "github.com/breightend/mykonos-inventory/application/cart"
	"github.com/breightend/mykonos-inventory/constant"
	catalogmocks "github.com/breightend/mykonos-inventory/mocks/application/catalog"
	reservationmocks "github.com/breightend/mykonos-inventory/mocks/application/reservation"
	cartmocks "github.com/breightend/mykonos-inventory/mocks/repository/cart"
	"github.com/breightend/mykonos-inventory/model"
	cerr "github.com/breightend/mykonos-inventory/utils/errors"
)

func TestCartApp_ValidateCart(t *testing.T) {
	type fields struct {
		cartRepo       *cartmocks.CartRepository
		catalogApp     *catalogmocks.CatalogApp
		reservationApp *reservationmocks.ReservationApp
	}
	newFields := func(t *testing.T) fields {
		return fields{
			cartRepo:       cartmocks.NewCartRepository(t),
			catalogApp:     catalogmocks.NewCatalogApp(t),
			reservationApp: reservationmocks.NewReservationApp(t),
		}
	}
	tests := []struct {
		name     string
		fields   fields
		cartID   uint64
		mockCall func(f fields)
		want     []model.CartLineResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "legacy line checks availability of the mapped web variant",
			fields: newFields(t),
			cartID: 55,
			mockCall: func(f fields) {
				f.cartRepo.On("GetCartLines", mock.Anything, uint64(55)).Return([]model.CartLine{
					{CartItemID: 1, VariantID: 900, Quantity: 2},
				}, nil).Once()
				f.catalogApp.On("Resolve", mock.Anything, uint64(900)).Return(&model.ResolvedVariant{
					Kind:            constant.VariantKindLegacyWarehouse,
					LedgerVariantID: 10,
				}, nil).Once()
				f.reservationApp.On("Available", mock.Anything, uint64(10)).Return(int64(5), nil).Once()
			},
			want: []model.CartLineResult{
				{CartItemID: 1, VariantID: 900, Quantity: 2, Status: constant.CartLineOk, ResolvedKind: constant.VariantKindLegacyWarehouse, Available: 5},
			},
		},
		{
			name:   "orphaned line does not stop evaluation of the rest",
			fields: newFields(t),
			cartID: 56,
			mockCall: func(f fields) {
				f.cartRepo.On("GetCartLines", mock.Anything, uint64(56)).Return([]model.CartLine{
					{CartItemID: 1, VariantID: 10, Quantity: 1},
					{CartItemID: 2, VariantID: 404, Quantity: 1},
					{CartItemID: 3, VariantID: 11, Quantity: 9},
				}, nil).Once()

				f.catalogApp.On("Resolve", mock.Anything, uint64(10)).Return(&model.ResolvedVariant{
					Kind:            constant.VariantKindWeb,
					LedgerVariantID: 10,
				}, nil).Once()
				f.reservationApp.On("Available", mock.Anything, uint64(10)).Return(int64(3), nil).Once()

				f.catalogApp.On("Resolve", mock.Anything, uint64(404)).Return(&model.ResolvedVariant{
					Kind: constant.VariantKindNotFound,
				}, nil).Once()

				f.catalogApp.On("Resolve", mock.Anything, uint64(11)).Return(&model.ResolvedVariant{
					Kind:            constant.VariantKindWeb,
					LedgerVariantID: 11,
				}, nil).Once()
				f.reservationApp.On("Available", mock.Anything, uint64(11)).Return(int64(4), nil).Once()
			},
			want: []model.CartLineResult{
				{CartItemID: 1, VariantID: 10, Quantity: 1, Status: constant.CartLineOk, ResolvedKind: constant.VariantKindWeb, Available: 3},
				{CartItemID: 2, VariantID: 404, Quantity: 1, Status: constant.CartLineOrphanedVariant, ResolvedKind: constant.VariantKindNotFound},
				{CartItemID: 3, VariantID: 11, Quantity: 9, Status: constant.CartLineInsufficient, ResolvedKind: constant.VariantKindWeb, Available: 4},
			},
		},
		{
			name:   "legacy line without a web counterpart has zero availability",
			fields: newFields(t),
			cartID: 57,
			mockCall: func(f fields) {
				f.cartRepo.On("GetCartLines", mock.Anything, uint64(57)).Return([]model.CartLine{
					{CartItemID: 1, VariantID: 901, Quantity: 1},
				}, nil).Once()
				f.catalogApp.On("Resolve", mock.Anything, uint64(901)).Return(&model.ResolvedVariant{
					Kind:            constant.VariantKindLegacyWarehouse,
					LedgerVariantID: 0,
				}, nil).Once()
			},
			want: []model.CartLineResult{
				{CartItemID: 1, VariantID: 901, Quantity: 1, Status: constant.CartLineInsufficient, ResolvedKind: constant.VariantKindLegacyWarehouse, Available: 0},
			},
		},
		{
			name:   "empty cart yields an empty report",
			fields: newFields(t),
			cartID: 58,
			mockCall: func(f fields) {
				f.cartRepo.On("GetCartLines", mock.Anything, uint64(58)).Return([]model.CartLine{}, nil).Once()
			},
			want: []model.CartLineResult{},
		},
		{
			name:   "error: loading cart lines fails",
			fields: newFields(t),
			cartID: 59,
			mockCall: func(f fields) {
				f.cartRepo.On("GetCartLines", mock.Anything, uint64(59)).Return(nil, errors.New("db error")).Once()
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
			app := appcart.NewCartApp(tt.fields.cartRepo, tt.fields.catalogApp, tt.fields.reservationApp)

			got, err := app.ValidateCart(context.Background(), tt.cartID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCart() error = %v, wantErr %v", err, tt.wantErr)
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

			if len(got) != len(tt.want) {
				t.Fatalf("ValidateCart() len = %v, want %v", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("ValidateCart()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
