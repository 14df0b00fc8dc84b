package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexum-inventory-be/internal/entity"
)

func strPtr(s string) *string    { return &s }
func f64Ptr(f float64) *float64  { return &f }

func fullRaw() *RawProduct {
	return &RawProduct{
		Code:            strPtr("MT-2024-001"),
		Description:     strPtr("Resistor 10K Ohm 1/4W"),
		Category:        strPtr("materia_prima"),
		AbcClass:        strPtr("A"),
		Unit:            strPtr("UN"),
		OnHand:          f64Ptr(250),
		InTransit:       f64Ptr(0),
		Reserved:        f64Ptr(10),
		Cmm:             f64Ptr(470),
		MaxStock:        f64Ptr(2000),
		CoverageDays:    f64Ptr(16),
		AveragePrice:    f64Ptr(0.15),
		Status:          strPtr("CRITICO"),
		Location:        strPtr("A-01-03"),
		PrimarySupplier: strPtr("Eletro Componentes LTDA"),
	}
}

func TestDecodeProductComplete(t *testing.T) {
	res, derr := DecodeProduct(fullRaw())

	require.Nil(t, derr)
	assert.Empty(t, res.Substitutions, "complete record must not report substitutions")
	assert.Equal(t, "MT-2024-001", res.Product.Code)
	assert.Equal(t, entity.StockStatusCritical, res.Product.Status)
	assert.Equal(t, float64(250), res.Product.OnHand)
	assert.Equal(t, "0.15", res.Product.AveragePrice.String())
}

func TestDecodeProductRecordsSubstitutions(t *testing.T) {
	raw := fullRaw()
	raw.Cmm = nil
	raw.Location = nil

	res, derr := DecodeProduct(raw)

	require.Nil(t, derr)
	assert.Equal(t, float64(0), res.Product.Cmm)
	assert.Contains(t, res.Substitutions, "cmm")
	assert.Contains(t, res.Substitutions, "localizacao")
}

func TestDecodeProductMissingCode(t *testing.T) {
	raw := fullRaw()
	raw.Code = strPtr("   ")

	_, derr := DecodeProduct(raw)
	require.NotNil(t, derr)
	assert.Contains(t, derr.Error(), "missing item code")
}

func TestDecodeProductNegativeQuantityIsError(t *testing.T) {
	raw := fullRaw()
	raw.OnHand = f64Ptr(-5)

	_, derr := DecodeProduct(raw)
	require.NotNil(t, derr)
	assert.Equal(t, "MT-2024-001", derr.Code)
	assert.Contains(t, derr.Reason, "saldo_estoque")
}

func TestDecodeProductUnknownStatus(t *testing.T) {
	raw := fullRaw()
	raw.Status = strPtr("WHATEVER")

	_, derr := DecodeProduct(raw)
	require.NotNil(t, derr)
	assert.Contains(t, derr.Reason, "unknown status")
}

func TestDecodeProductDefaultsStatus(t *testing.T) {
	raw := fullRaw()
	raw.Status = nil

	res, derr := DecodeProduct(raw)
	require.Nil(t, derr)
	assert.Equal(t, entity.StockStatusNormal, res.Product.Status)
	assert.Contains(t, res.Substitutions, "status")
}

func TestDecodeProductNil(t *testing.T) {
	_, derr := DecodeProduct(nil)
	require.NotNil(t, derr)
}
