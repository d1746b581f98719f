package criteria_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbglogistica/logistica-api/internal/criteria"
	"github.com/jbglogistica/logistica-api/internal/domain"
)

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests Build — paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_LimitAusente_UsaDefault(t *testing.T) {
	c, err := criteria.Build("customers", criteria.Request{})
	require.NoError(t, err)
	assert.Equal(t, criteria.DefaultLimit, c.Limit, "sin limit explícito aplica el default")
	assert.Equal(t, 0, c.Offset)
}

func TestBuild_LimitCero_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{Limit: intPtr(0)})
	require.Error(t, err, "limit 0 explícito no es 'ausente': se rechaza")

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "limit", ve.Fields[0].Field)
}

func TestBuild_LimitNegativo_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{Limit: intPtr(-5)})
	assert.Error(t, err)
}

func TestBuild_LimitSobreElMaximo_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{Limit: intPtr(criteria.MaxLimit + 1)})
	assert.Error(t, err)
}

func TestBuild_OffsetNegativo_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{Offset: intPtr(-1)})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Build — esquema cerrado de campos y entidades
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_EntidadDesconocida_SeRechaza(t *testing.T) {
	_, err := criteria.Build("facturas", criteria.Request{})
	require.Error(t, err)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)
}

// Un filtro sobre un campo fuera del esquema se rechaza antes de tocar la red
// o la base de datos.
func TestBuild_CampoDesconocido_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "saldo_pendiente", Operator: criteria.OpEq, Value: "x"},
		},
	})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields[0].Message, "saldo_pendiente")
}

func TestBuild_OperadorDesconocido_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "name", Operator: "regex", Value: ".*"},
		},
	})
	assert.Error(t, err)
}

func TestBuild_ReportaTodasLasViolaciones(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "campo_falso", Operator: criteria.OpEq, Value: "x"},
			{Field: "name", Operator: "regex", Value: ".*"},
		},
		Limit: intPtr(0),
	})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 3, "un criterio malformado se reporta completo, nunca se aplica en parte")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Build — compatibilidad operador/tipo y forma del value
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_PatronSobreCampoNumerico_SeRechaza(t *testing.T) {
	_, err := criteria.Build("boxes", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "unit_price", Operator: criteria.OpContains, Value: "9"},
		},
	})
	assert.Error(t, err, "contains solo aplica a strings")
}

func TestBuild_ComparacionSobreString_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "name", Operator: criteria.OpGt, Value: "a"},
		},
	})
	assert.Error(t, err)
}

func TestBuild_Between_RequiereArrayDeDos(t *testing.T) {
	_, err := criteria.Build("boxes", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "unit_price", Operator: criteria.OpBetween, Value: []any{1.0}},
		},
	})
	require.Error(t, err)

	c, err := criteria.Build("boxes", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "unit_price", Operator: criteria.OpBetween, Value: []any{1.0, 9.5}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 9.5}, c.Filters[0].Value)
}

func TestBuild_In_RequiereArrayNoVacio(t *testing.T) {
	_, err := criteria.Build("orders", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "status", Operator: criteria.OpIn, Value: []any{}},
		},
	})
	assert.Error(t, err)
}

func TestBuild_Null_NoLlevaValue(t *testing.T) {
	_, err := criteria.Build("shipments", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "delivered_at", Operator: criteria.OpNull, Value: "algo"},
		},
	})
	require.Error(t, err)

	c, err := criteria.Build("shipments", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "delivered_at", Operator: criteria.OpNull},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, c.Filters[0].Value)
}

func TestBuild_LastNDays_RequiereEnteroPositivo(t *testing.T) {
	_, err := criteria.Build("orders", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "created_at", Operator: criteria.OpLastNDays, Value: -3},
		},
	})
	require.Error(t, err)

	// JSON deserializa números como float64; un entero en float es válido.
	c, err := criteria.Build("orders", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "created_at", Operator: criteria.OpLastNDays, Value: float64(7)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, c.Filters[0].Value)
}

func TestBuild_Fecha_AceptaRFC3339YSoloFecha(t *testing.T) {
	for _, raw := range []string{"2026-08-30T10:00:00Z", "2026-08-30"} {
		_, err := criteria.Build("orders", criteria.Request{
			Filters: []criteria.Filter{
				{Field: "created_at", Operator: criteria.OpGte, Value: raw},
			},
		})
		assert.NoError(t, err, "fecha %q debe ser válida", raw)
	}

	_, err := criteria.Build("orders", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "created_at", Operator: criteria.OpGte, Value: "30/08/2026"},
		},
	})
	assert.Error(t, err)
}

func TestBuild_TemporalSobreCampoNoFecha_SeRechaza(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{
		Filters: []criteria.Filter{
			{Field: "name", Operator: criteria.OpToday},
		},
	})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Build — orden
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_Orden_ValidaCampoYDireccion(t *testing.T) {
	_, err := criteria.Build("customers", criteria.Request{
		Order: &criteria.Order{Field: "name", Direction: "descendente"},
	})
	require.Error(t, err)

	c, err := criteria.Build("customers", criteria.Request{
		Order: &criteria.Order{Field: "name", Direction: "desc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "name", c.Order.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Operator — enumeración cerrada
// ──────────────────────────────────────────────────────────────────────────────

func TestOperator_EnumeracionCerrada(t *testing.T) {
	assert.True(t, criteria.OpStartsWith.IsValid())
	assert.True(t, criteria.OpLastNDays.IsValid())
	assert.False(t, criteria.Operator("like").IsValid())
	assert.False(t, criteria.Operator("").IsValid())
}
