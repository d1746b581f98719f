package criteria

// Operator operador de filtro de la enumeración cerrada. Cubre igualdad,
// comparación, rango, pertenencia, patrón, null-checks y chequeos temporales
// relativos. Cualquier operador fuera de la lista se rechaza en validación.
type Operator string

const (
	// Igualdad
	OpEq Operator = "eq"
	OpNe Operator = "ne"

	// Comparación (números y fechas)
	OpLt  Operator = "lt"
	OpGt  Operator = "gt"
	OpLte Operator = "lte"
	OpGte Operator = "gte"

	// Rango: value debe ser un array de exactamente dos elementos
	OpBetween  Operator = "between"
	OpNBetween Operator = "nbetween"

	// Pertenencia: value debe ser un array no vacío
	OpIn  Operator = "in"
	OpNin Operator = "nin"

	// Patrón sobre strings. El sufijo "s" marca la variante case-sensitive.
	OpContains    Operator = "contains"
	OpNContains   Operator = "ncontains"
	OpContainsS   Operator = "containss"
	OpNContainsS  Operator = "ncontainss"
	OpStartsWith  Operator = "startswith"
	OpNStartsWith Operator = "nstartswith"
	OpStartsWithS Operator = "startswiths"
	OpNStartsWthS Operator = "nstartswiths"
	OpEndsWith    Operator = "endswith"
	OpNEndsWith   Operator = "nendswith"
	OpEndsWithS   Operator = "endswiths"
	OpNEndsWithS  Operator = "nendswiths"

	// Null-checks: no llevan value
	OpNull  Operator = "null"
	OpNNull Operator = "nnull"

	// Temporales relativos (campos fecha). Solo lastndays lleva value (entero > 0).
	OpToday     Operator = "today"
	OpYesterday Operator = "yesterday"
	OpThisWeek  Operator = "thisweek"
	OpThisMonth Operator = "thismonth"
	OpThisYear  Operator = "thisyear"
	OpLastNDays Operator = "lastndays"
)

var allOperators = map[Operator]struct{}{
	OpEq: {}, OpNe: {},
	OpLt: {}, OpGt: {}, OpLte: {}, OpGte: {},
	OpBetween: {}, OpNBetween: {},
	OpIn: {}, OpNin: {},
	OpContains: {}, OpNContains: {}, OpContainsS: {}, OpNContainsS: {},
	OpStartsWith: {}, OpNStartsWith: {}, OpStartsWithS: {}, OpNStartsWthS: {},
	OpEndsWith: {}, OpNEndsWith: {}, OpEndsWithS: {}, OpNEndsWithS: {},
	OpNull: {}, OpNNull: {},
	OpToday: {}, OpYesterday: {}, OpThisWeek: {}, OpThisMonth: {}, OpThisYear: {}, OpLastNDays: {},
}

// IsValid indica si el operador pertenece a la enumeración.
func (o Operator) IsValid() bool {
	_, ok := allOperators[o]
	return ok
}

// operadores agrupados por familia, para validar compatibilidad con tipos de campo.
var (
	comparisonOps = map[Operator]struct{}{OpLt: {}, OpGt: {}, OpLte: {}, OpGte: {}, OpBetween: {}, OpNBetween: {}}
	membershipOps = map[Operator]struct{}{OpIn: {}, OpNin: {}}
	patternOps    = map[Operator]struct{}{
		OpContains: {}, OpNContains: {}, OpContainsS: {}, OpNContainsS: {},
		OpStartsWith: {}, OpNStartsWith: {}, OpStartsWithS: {}, OpNStartsWthS: {},
		OpEndsWith: {}, OpNEndsWith: {}, OpEndsWithS: {}, OpNEndsWithS: {},
	}
	temporalOps = map[Operator]struct{}{
		OpToday: {}, OpYesterday: {}, OpThisWeek: {}, OpThisMonth: {}, OpThisYear: {}, OpLastNDays: {},
	}
	noValueOps = map[Operator]struct{}{
		OpNull: {}, OpNNull: {},
		OpToday: {}, OpYesterday: {}, OpThisWeek: {}, OpThisMonth: {}, OpThisYear: {},
	}
)

// AppliesTo indica si el operador es compatible con el tipo de campo.
func (o Operator) AppliesTo(ft FieldType) bool {
	switch {
	case o == OpEq || o == OpNe || o == OpNull || o == OpNNull:
		return true
	case isIn(o, comparisonOps):
		return ft == FieldNumber || ft == FieldDate
	case isIn(o, membershipOps):
		return ft == FieldString || ft == FieldNumber || ft == FieldID
	case isIn(o, patternOps):
		return ft == FieldString
	case isIn(o, temporalOps):
		return ft == FieldDate
	default:
		return false
	}
}

func isIn(o Operator, set map[Operator]struct{}) bool {
	_, ok := set[o]
	return ok
}
