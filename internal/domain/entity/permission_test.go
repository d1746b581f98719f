package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ParsePermission / ParsePermissionSet — enumeración cerrada
// ──────────────────────────────────────────────────────────────────────────────

func TestParsePermission_TagValido(t *testing.T) {
	p, err := entity.ParsePermission("CAN_SELL")
	require.NoError(t, err)
	assert.Equal(t, entity.PermCanSell, p)
}

func TestParsePermission_TagDesconocido_RetornaValidationError(t *testing.T) {
	_, err := entity.ParsePermission("CAN_FLY")
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok, "un tag fuera de la enumeración debe producir ValidationError")
	assert.Len(t, ve.Fields, 1)
}

func TestParsePermissionSet_ReportaTodosLosTagsInvalidos(t *testing.T) {
	_, err := entity.ParsePermissionSet([]string{"CAN_SELL", "CAN_FLY", "CAN_TELEPORT"})
	require.Error(t, err)

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 2, "debe reportar cada tag inválido, no solo el primero")
}

func TestParsePermissionSet_Deduplica(t *testing.T) {
	set, err := entity.ParsePermissionSet([]string{"CAN_SELL", "CAN_SELL", "CAN_SHIP"})
	require.NoError(t, err)
	assert.Len(t, set, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PermissionSet — serialización round-trip e igualdad de conjunto
// ──────────────────────────────────────────────────────────────────────────────

// Serializar y volver a parsear debe producir un conjunto igual al original,
// sin importar el orden de construcción.
func TestPermissionSet_RoundTripJSON_IgualdadDeConjunto(t *testing.T) {
	original := entity.NewPermissionSet(
		entity.PermCanShip, entity.PermCanSell, entity.PermCanManageUsers,
	)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored entity.PermissionSet
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.True(t, original.Equal(restored),
		"el round-trip debe preservar el conjunto aunque el orden cambie")
}

func TestPermissionSet_UnmarshalJSON_RechazaTagDesconocido(t *testing.T) {
	var set entity.PermissionSet
	err := json.Unmarshal([]byte(`["CAN_SELL","CAN_HACK"]`), &set)
	assert.Error(t, err, "un array con tags fuera de la enumeración no debe deserializar")
}

func TestPermissionSet_MarshalJSON_SalidaOrdenada(t *testing.T) {
	set := entity.NewPermissionSet(entity.PermCanShip, entity.PermCanSell)
	data, err := json.Marshal(set)
	require.NoError(t, err)
	// Orden alfabético estable, independiente del orden de inserción.
	assert.JSONEq(t, `["CAN_SELL","CAN_SHIP"]`, string(data))
}

func TestPermissionSet_Equal_IndependienteDelOrden(t *testing.T) {
	a := entity.NewPermissionSet(entity.PermCanSell, entity.PermCanShip)
	b := entity.NewPermissionSet(entity.PermCanShip, entity.PermCanSell)
	c := entity.NewPermissionSet(entity.PermCanSell)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Intersects — semántica OR
// ──────────────────────────────────────────────────────────────────────────────

func TestPermissionSet_Intersects_BastaUnPermiso(t *testing.T) {
	set := entity.NewPermissionSet(entity.PermCanSell)

	assert.True(t, set.Intersects([]entity.Permission{
		entity.PermCanManageUsers, entity.PermCanSell,
	}), "con un permiso en común es suficiente (OR, no AND)")

	assert.False(t, set.Intersects([]entity.Permission{
		entity.PermCanManageUsers, entity.PermCanShip,
	}))
	assert.False(t, set.Intersects(nil))
}

func TestRole_Validate(t *testing.T) {
	valido := entity.Role{Name: "VENDEDOR", Permissions: entity.NewPermissionSet(entity.PermCanSell)}
	assert.NoError(t, valido.Validate())

	sinNombre := entity.Role{Permissions: entity.NewPermissionSet(entity.PermCanSell)}
	assert.Error(t, sinNombre.Validate())

	sinPermisos := entity.Role{Name: "VACIO"}
	assert.Error(t, sinPermisos.Validate(), "un rol sin permisos no es válido")
}
