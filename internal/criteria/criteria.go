// Package criteria valida y normaliza consultas de listado (filtros, orden y
// paginación) contra el esquema cerrado de cada entidad. No ejecuta la
// consulta: produce un objeto normalizado listo para traducir en el repositorio.
package criteria

import (
	"fmt"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/jbglogistica/logistica-api/internal/domain"
)

// DefaultLimit límite de página cuando el request no lo especifica.
const DefaultLimit = 50

// MaxLimit tope duro de página.
const MaxLimit = 500

// Filter condición individual sobre un campo de la entidad.
type Filter struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value,omitempty"`
}

// Order orden opcional del resultado.
type Order struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // asc | desc
}

// Request entrada cruda tal como llega del cliente. Limit y Offset son
// punteros para distinguir "ausente" de "cero explícito".
type Request struct {
	Filters []Filter `json:"filters"`
	Order   *Order   `json:"order,omitempty"`
	Limit   *int     `json:"limit,omitempty"`
	Offset  *int     `json:"offset,omitempty"`
}

// Criteria consulta validada y normalizada. Inmutable después de Build.
type Criteria struct {
	Entity  string   `json:"entity"`
	Filters []Filter `json:"filters"`
	Order   *Order   `json:"order,omitempty"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// Build valida el request contra el esquema de la entidad y devuelve el
// criterio normalizado. Nunca aplica parcialmente un criterio malformado:
// cualquier violación produce ValidationError con mensajes por campo.
func Build(entity string, req Request) (Criteria, error) {
	schema, ok := SchemaFor(entity)
	if !ok {
		return Criteria{}, domain.NewValidationError("entity", "entidad desconocida: "+entity)
	}

	ve := &domain.ValidationError{}

	filters := make([]Filter, 0, len(req.Filters))
	for i, f := range req.Filters {
		prefix := fmt.Sprintf("filters[%d]", i)
		field, known := schema.Fields[f.Field]
		if !known {
			ve.Add(prefix+".field", "campo desconocido para "+entity+": "+f.Field)
			continue
		}
		if !f.Operator.IsValid() {
			ve.Add(prefix+".operator", "operador desconocido: "+string(f.Operator))
			continue
		}
		if !f.Operator.AppliesTo(field.Type) {
			ve.Add(prefix+".operator", fmt.Sprintf("operador %s no aplica a campo %s (%s)", f.Operator, f.Field, field.Type))
			continue
		}
		value, err := normalizeValue(f.Operator, field.Type, f.Value)
		if err != nil {
			ve.Add(prefix+".value", err.Error())
			continue
		}
		filters = append(filters, Filter{Field: f.Field, Operator: f.Operator, Value: value})
	}

	if req.Order != nil {
		if !schema.HasField(req.Order.Field) {
			ve.Add("order.field", "campo desconocido para "+entity+": "+req.Order.Field)
		}
		if req.Order.Direction != "asc" && req.Order.Direction != "desc" {
			ve.Add("order.direction", "dirección inválida: "+req.Order.Direction+" (use asc o desc)")
		}
	}

	limit := DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
		if limit <= 0 {
			ve.Add("limit", "limit debe ser un entero positivo")
		} else if limit > MaxLimit {
			ve.Add("limit", fmt.Sprintf("limit no puede superar %d", MaxLimit))
		}
	}
	offset := 0
	if req.Offset != nil {
		offset = *req.Offset
		if offset < 0 {
			ve.Add("offset", "offset no puede ser negativo")
		}
	}

	if ve.HasErrors() {
		return Criteria{}, ve
	}

	return Criteria{
		Entity:  entity,
		Filters: filters,
		Order:   req.Order,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// normalizeValue valida la forma del value según operador y tipo de campo y
// devuelve la representación normalizada.
func normalizeValue(op Operator, ft FieldType, value any) (any, error) {
	if _, noValue := noValueOps[op]; noValue {
		if value != nil {
			return nil, fmt.Errorf("el operador %s no lleva value", op)
		}
		return nil, nil
	}

	switch {
	case op == OpBetween || op == OpNBetween:
		arr, ok := value.([]any)
		if !ok || len(arr) != 2 {
			return nil, fmt.Errorf("el operador %s requiere un array de dos elementos", op)
		}
		lo, err := scalarValue(ft, arr[0])
		if err != nil {
			return nil, err
		}
		hi, err := scalarValue(ft, arr[1])
		if err != nil {
			return nil, err
		}
		return []any{lo, hi}, nil

	case op == OpIn || op == OpNin:
		arr, ok := value.([]any)
		if !ok || len(arr) == 0 {
			return nil, fmt.Errorf("el operador %s requiere un array no vacío", op)
		}
		out := make([]any, len(arr))
		for i, v := range arr {
			sv, err := scalarValue(ft, v)
			if err != nil {
				return nil, err
			}
			out[i] = sv
		}
		return out, nil

	case op == OpLastNDays:
		n, ok := asInt(value)
		if !ok || n <= 0 {
			return nil, fmt.Errorf("el operador %s requiere un entero positivo", op)
		}
		return n, nil

	case isIn(op, patternOps):
		s, ok := value.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("el operador %s requiere un string no vacío", op)
		}
		// Composición canónica: datos en español pueden llegar en NFD desde el
		// cliente y no coincidirían con lo almacenado en NFC.
		return norm.NFC.String(s), nil

	default: // eq, ne, lt, gt, lte, gte
		return scalarValue(ft, value)
	}
}

// scalarValue valida un valor escalar contra el tipo lógico del campo.
func scalarValue(ft FieldType, value any) (any, error) {
	switch ft {
	case FieldString, FieldID:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("se esperaba string, llegó %T", value)
		}
		return norm.NFC.String(s), nil
	case FieldNumber:
		switch n := value.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		default:
			return nil, fmt.Errorf("se esperaba número, llegó %T", value)
		}
	case FieldBool:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("se esperaba booleano, llegó %T", value)
		}
		return b, nil
	case FieldDate:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("se esperaba fecha en string, llegó %T", value)
		}
		t, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("tipo de campo no soportado: %s", ft)
	}
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %s (use RFC3339 o YYYY-MM-DD)", s)
}

func asInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
