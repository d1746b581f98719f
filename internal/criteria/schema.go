package criteria

// FieldType tipo lógico de un campo consultable.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
	FieldBool   FieldType = "bool"
	FieldDate   FieldType = "date"
	FieldID     FieldType = "id"
)

// Field campo consultable de una entidad: columna SQL + tipo lógico.
type Field struct {
	Column string
	Type   FieldType
}

// Schema conjunto cerrado de campos consultables de una entidad.
// Un filtro que referencie un campo fuera del esquema se rechaza antes de
// tocar la red o la base de datos.
type Schema struct {
	Entity string
	Table  string
	Fields map[string]Field
}

// HasField indica si el campo pertenece al esquema.
func (s Schema) HasField(name string) bool {
	_, ok := s.Fields[name]
	return ok
}

// registry esquemas por nombre de entidad, como los expone el endpoint find.
var registry = map[string]Schema{
	"customers": {
		Entity: "customers",
		Table:  "customers",
		Fields: map[string]Field{
			"id":         {Column: "id", Type: FieldID},
			"name":       {Column: "name", Type: FieldString},
			"tax_id":     {Column: "tax_id", Type: FieldString},
			"email":      {Column: "email", Type: FieldString},
			"phone":      {Column: "phone", Type: FieldString},
			"address":    {Column: "address", Type: FieldString},
			"zone_id":    {Column: "zone_id", Type: FieldID},
			"created_at": {Column: "created_at", Type: FieldDate},
		},
	},
	"boxes": {
		Entity: "boxes",
		Table:  "boxes",
		Fields: map[string]Field{
			"id":            {Column: "id", Type: FieldID},
			"code":          {Column: "code", Type: FieldString},
			"name":          {Column: "name", Type: FieldString},
			"width_cm":      {Column: "width_cm", Type: FieldNumber},
			"height_cm":     {Column: "height_cm", Type: FieldNumber},
			"length_cm":     {Column: "length_cm", Type: FieldNumber},
			"max_weight_kg": {Column: "max_weight_kg", Type: FieldNumber},
			"unit_price":    {Column: "unit_price", Type: FieldNumber},
			"created_at":    {Column: "created_at", Type: FieldDate},
		},
	},
	"stores": {
		Entity: "stores",
		Table:  "stores",
		Fields: map[string]Field{
			"id":         {Column: "id", Type: FieldID},
			"name":       {Column: "name", Type: FieldString},
			"address":    {Column: "address", Type: FieldString},
			"phone":      {Column: "phone", Type: FieldString},
			"is_active":  {Column: "is_active", Type: FieldBool},
			"created_at": {Column: "created_at", Type: FieldDate},
		},
	},
	"zones": {
		Entity: "zones",
		Table:  "zones",
		Fields: map[string]Field{
			"id":         {Column: "id", Type: FieldID},
			"code":       {Column: "code", Type: FieldString},
			"name":       {Column: "name", Type: FieldString},
			"created_at": {Column: "created_at", Type: FieldDate},
		},
	},
	"tariffs": {
		Entity: "tariffs",
		Table:  "tariffs",
		Fields: map[string]Field{
			"id":            {Column: "id", Type: FieldID},
			"zone_id":       {Column: "zone_id", Type: FieldID},
			"name":          {Column: "name", Type: FieldString},
			"base_price":    {Column: "base_price", Type: FieldNumber},
			"price_per_kg":  {Column: "price_per_kg", Type: FieldNumber},
			"max_weight_kg": {Column: "max_weight_kg", Type: FieldNumber},
			"is_active":     {Column: "is_active", Type: FieldBool},
			"created_at":    {Column: "created_at", Type: FieldDate},
		},
	},
	"orders": {
		Entity: "orders",
		Table:  "orders",
		Fields: map[string]Field{
			"id":          {Column: "id", Type: FieldID},
			"customer_id": {Column: "customer_id", Type: FieldID},
			"store_id":    {Column: "store_id", Type: FieldID},
			"created_by":  {Column: "created_by", Type: FieldID},
			"status":      {Column: "status", Type: FieldString},
			"total":       {Column: "total", Type: FieldNumber},
			"created_at":  {Column: "created_at", Type: FieldDate},
		},
	},
	"shipments": {
		Entity: "shipments",
		Table:  "shipments",
		Fields: map[string]Field{
			"id":            {Column: "id", Type: FieldID},
			"order_id":      {Column: "order_id", Type: FieldID},
			"tracking_code": {Column: "tracking_code", Type: FieldString},
			"zone_id":       {Column: "zone_id", Type: FieldID},
			"driver_id":     {Column: "driver_id", Type: FieldID},
			"status":        {Column: "status", Type: FieldString},
			"weight_kg":     {Column: "weight_kg", Type: FieldNumber},
			"price":         {Column: "price", Type: FieldNumber},
			"address":       {Column: "address", Type: FieldString},
			"created_at":    {Column: "created_at", Type: FieldDate},
			"delivered_at":  {Column: "delivered_at", Type: FieldDate},
		},
	},
	"drivers": {
		Entity: "drivers",
		Table:  "drivers",
		Fields: map[string]Field{
			"id":            {Column: "id", Type: FieldID},
			"name":          {Column: "name", Type: FieldString},
			"phone":         {Column: "phone", Type: FieldString},
			"license_plate": {Column: "license_plate", Type: FieldString},
			"is_active":     {Column: "is_active", Type: FieldBool},
			"created_at":    {Column: "created_at", Type: FieldDate},
		},
	},
	"users": {
		Entity: "users",
		Table:  "users",
		Fields: map[string]Field{
			"id":         {Column: "id", Type: FieldID},
			"email":      {Column: "email", Type: FieldString},
			"name":       {Column: "name", Type: FieldString},
			"store_id":   {Column: "store_id", Type: FieldID},
			"is_active":  {Column: "is_active", Type: FieldBool},
			"created_at": {Column: "created_at", Type: FieldDate},
		},
	},
}

// SchemaFor devuelve el esquema de la entidad, si está registrada.
func SchemaFor(entity string) (Schema, bool) {
	s, ok := registry[entity]
	return s, ok
}

// Entities lista las entidades consultables registradas.
func Entities() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}
