package mapper

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"nexum-inventory-be/internal/entity"
)

// RawProduct is the loosely-typed shape arriving at the import boundary.
// Pointer fields distinguish "absent" from "zero" so substitutions can be
// recorded instead of silently coalesced.
type RawProduct struct {
	Id              *uint    `json:"id"`
	Code            *string  `json:"codigo"`
	Description     *string  `json:"descricao"`
	Category        *string  `json:"tipo"`
	AbcClass        *string  `json:"abc"`
	Unit            *string  `json:"unidade_medida"`
	OnHand          *float64 `json:"saldo_estoque"`
	InTransit       *float64 `json:"em_transito"`
	Reserved        *float64 `json:"reservado"`
	Cmm             *float64 `json:"cmm"`
	MaxStock        *float64 `json:"estoque_maximo"`
	CoverageDays    *float64 `json:"cobertura"`
	AveragePrice    *float64 `json:"preco_medio"`
	Status          *string  `json:"status"`
	Location        *string  `json:"localizacao"`
	PrimarySupplier *string  `json:"fornecedor_principal"`
}

// DecodeResult reports what the decoder had to do to a single record.
// Substitutions lists every field that was defaulted; upstream data quality
// problems stay visible instead of disappearing behind || fallbacks.
type DecodeResult struct {
	Product       *entity.Product
	Substitutions []string
}

// DecodeError is a per-record typed decoding failure.
type DecodeError struct {
	Code   string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("product decode failed: %s", e.Reason)
	}
	return fmt.Sprintf("product %s decode failed: %s", e.Code, e.Reason)
}

var validStatuses = map[entity.StockStatus]bool{
	entity.StockStatusCritical:  true,
	entity.StockStatusAttention: true,
	entity.StockStatusNormal:    true,
	entity.StockStatusExcess:    true,
}

// DecodeProduct validates and normalizes one raw record. Code is the identity
// of the record and cannot be defaulted; numeric fields coalesce to 0 and
// string fields to "", each substitution recorded. Negative quantities are a
// hard error, not a clamp: they indicate corruption upstream.
func DecodeProduct(raw *RawProduct) (*DecodeResult, *DecodeError) {
	if raw == nil {
		return nil, &DecodeError{Reason: "record is nil"}
	}
	if raw.Code == nil || strings.TrimSpace(*raw.Code) == "" {
		return nil, &DecodeError{Reason: "missing item code"}
	}

	code := strings.TrimSpace(*raw.Code)
	res := &DecodeResult{Product: &entity.Product{Code: code}}
	p := res.Product

	if raw.Id != nil {
		p.Id = *raw.Id
	}

	p.Description = stringField(raw.Description, "descricao", res)
	p.Category = stringField(raw.Category, "tipo", res)
	p.AbcClass = stringField(raw.AbcClass, "abc", res)
	p.Unit = stringField(raw.Unit, "unidade_medida", res)
	p.Location = stringField(raw.Location, "localizacao", res)
	p.PrimarySupplier = stringField(raw.PrimarySupplier, "fornecedor_principal", res)

	var derr *DecodeError
	if p.OnHand, derr = numericField(raw.OnHand, "saldo_estoque", code, res); derr != nil {
		return nil, derr
	}
	if p.InTransit, derr = numericField(raw.InTransit, "em_transito", code, res); derr != nil {
		return nil, derr
	}
	if p.Reserved, derr = numericField(raw.Reserved, "reservado", code, res); derr != nil {
		return nil, derr
	}
	if p.Cmm, derr = numericField(raw.Cmm, "cmm", code, res); derr != nil {
		return nil, derr
	}
	if p.MaxStock, derr = numericField(raw.MaxStock, "estoque_maximo", code, res); derr != nil {
		return nil, derr
	}
	if p.CoverageDays, derr = numericField(raw.CoverageDays, "cobertura", code, res); derr != nil {
		return nil, derr
	}

	price := 0.0
	if price, derr = numericField(raw.AveragePrice, "preco_medio", code, res); derr != nil {
		return nil, derr
	}
	p.AveragePrice = decimal.NewFromFloat(price)

	if raw.Status == nil {
		p.Status = entity.StockStatusNormal
		res.Substitutions = append(res.Substitutions, "status")
	} else {
		status := entity.StockStatus(strings.ToUpper(strings.TrimSpace(*raw.Status)))
		if !validStatuses[status] {
			return nil, &DecodeError{Code: code, Reason: fmt.Sprintf("unknown status %q", *raw.Status)}
		}
		p.Status = status
	}

	return res, nil
}

func stringField(v *string, name string, res *DecodeResult) string {
	if v == nil {
		res.Substitutions = append(res.Substitutions, name)
		return ""
	}
	return *v
}

func numericField(v *float64, name, code string, res *DecodeResult) (float64, *DecodeError) {
	if v == nil {
		res.Substitutions = append(res.Substitutions, name)
		return 0, nil
	}
	if *v < 0 {
		return 0, &DecodeError{Code: code, Reason: fmt.Sprintf("negative %s: %v", name, *v)}
	}
	return *v, nil
}
