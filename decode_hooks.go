package diagflags

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// StringToExitActionHookFunc creates a decode hook converting textual
// representations like "raise" and "exit" into ExitAction values.
func StringToExitActionHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(ExitRaiseError) {
			return data, nil
		}

		return ParseExitAction(data.(string))
	}
}

// StringToDebugActionHookFunc creates a decode hook converting textual
// representations like "ask" and "gdb" into DebugAction values.
func StringToDebugActionHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(DebugAsk) {
			return data, nil
		}

		return ParseDebugAction(data.(string))
	}
}
