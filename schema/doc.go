// Package schema provides the JSON Schema subset used to describe the
// parameters of a callable function to a tool-calling API.
//
// A [PropertyDefinition] is one schema node. Nodes nest through
// Properties (for objects) and Items (for arrays) and always form a tree.
// Optional fields left unset are omitted when encoded, so the wire form
// only carries what the caller set.
//
// # Factory Helpers
//
// Use the Define helpers instead of filling in fields by hand:
//
//	location := schema.DefineString("City name")
//	unit := schema.DefineEnum([]string{"celsius", "fahrenheit"}, "")
//	days := schema.DefineArray(schema.DefineInteger("Day offset"))
//
//	props := schema.NewProperties()
//	props.Set("location", location)
//	props.Set("unit", unit)
//	params := schema.DefineObject(props, []string{"location"}, schema.Ptr(false), "", nil)
//
// # Types
//
// [DataType] is a closed enumeration whose zero value is [TypeObject].
// [ConvertTypeToString] and [ParseType] map it to and from the wire names;
// values outside the enumeration fail with [ErrUnsupportedType], including
// when encoded.
//
// # Ordering
//
// [Properties] is an insertion-ordered map. Property order, and the order
// of Required and Enum, is preserved through JSON and YAML encoding.
//
// # Reflection
//
// [Reflect] derives a definition from a Go struct:
//
//	type WeatherArgs struct {
//		Location string `json:"location" jsonschema:"description=City name"`
//		Unit     string `json:"unit,omitempty" jsonschema:"enum=celsius,enum=fahrenheit"`
//	}
//
//	params, err := schema.Reflect[WeatherArgs]()
package schema
