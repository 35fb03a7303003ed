// Package decorators provides the recognized decorator name sets the
// define and class services consult to classify a method as a classmethod
// or a property. Spec calls this out explicitly as an externally injected
// collaborator so that adding a project-specific decorator (e.g. a house
// `@memoized_property`) never requires touching the define or class
// packages — only the registry's configuration.
package decorators

import (
	"fmt"

	"github.com/spf13/viper"
)

// Registry supplies the decorator names define and class services
// recognize. Implementations are expected to be immutable once built.
type Registry interface {
	// ClassMethodDecorators lists dotted decorator names that mark a
	// method as a classmethod.
	ClassMethodDecorators() []string
	// ClassPropertyDecorators lists dotted decorator names whose return
	// annotation should be wrapped in typing.ClassVar[...].
	ClassPropertyDecorators() []string
	// InstancePropertyDecorators lists dotted decorator names whose
	// return annotation is used as-is for the synthesized attribute.
	InstancePropertyDecorators() []string
}

type staticRegistry struct {
	classMethod      []string
	classProperty    []string
	instanceProperty []string
}

func (r *staticRegistry) ClassMethodDecorators() []string      { return r.classMethod }
func (r *staticRegistry) ClassPropertyDecorators() []string    { return r.classProperty }
func (r *staticRegistry) InstancePropertyDecorators() []string { return r.instanceProperty }

// DefaultRegistry returns the decorator names §4.1 calls out by name.
func DefaultRegistry() Registry {
	return &staticRegistry{
		classMethod: []string{"classmethod"},
		classProperty: []string{
			"util.classproperty",
			"util.etc.cached_classproperty",
			"util.etc.class_property",
		},
		instanceProperty: []string{
			"property",
			"cached_property",
			"util.etc.cached_property",
		},
	}
}

// LoadRegistry loads decorator name overrides from a YAML file of the
// form:
//
//	class_method_decorators: [classmethod, util.mockable_classmethod]
//	class_property_decorators: [util.classproperty]
//	instance_property_decorators: [property, cached_property]
//
// Any key the file omits falls back to DefaultRegistry's value for that
// key, so a project only needs to override what differs from the default.
func LoadRegistry(path string) (Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := DefaultRegistry()
	v.SetDefault("class_method_decorators", defaults.ClassMethodDecorators())
	v.SetDefault("class_property_decorators", defaults.ClassPropertyDecorators())
	v.SetDefault("instance_property_decorators", defaults.InstancePropertyDecorators())

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("decorators: failed to read %s: %w", path, err)
	}

	return &staticRegistry{
		classMethod:      v.GetStringSlice("class_method_decorators"),
		classProperty:    v.GetStringSlice("class_property_decorators"),
		instanceProperty: v.GetStringSlice("instance_property_decorators"),
	}, nil
}
