package typeexpr

import (
	"encoding/json"
	"fmt"
)

type jsonType struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name,omitempty"`
	Raw        *jsonType   `json:"raw,omitempty"`
	Args       []*jsonType `json:"args,omitempty"`
	Component  *jsonType   `json:"component,omitempty"`
	Dimensions int         `json:"dimensions,omitempty"`
	Bound      string      `json:"bound,omitempty"`
	Type       *jsonType   `json:"type,omitempty"`
}

// Marshal encodes t as tagged JSON. Handles are recorded by name only;
// Unmarshal resolves them again.
func Marshal(t Type) ([]byte, error) {
	data, err := toJSON(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(t Type, prefix, indent string) ([]byte, error) {
	data, err := toJSON(t)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, prefix, indent)
}

func toJSON(t Type) (*jsonType, error) {
	if t == nil {
		return nil, fmt.Errorf("marshal type: nil type")
	}
	out := &jsonType{Kind: t.Kind().String()}

	switch x := t.(type) {
	case Primitive:
		out.Name = string(x)
	case *Class:
		out.Name = x.Name()
	case *Parameterized:
		raw, err := toJSON(x.Raw)
		if err != nil {
			return nil, err
		}
		out.Raw = raw
		for _, arg := range x.Args {
			a, err := toJSON(arg)
			if err != nil {
				return nil, err
			}
			out.Args = append(out.Args, a)
		}
	case *Array:
		component, err := toJSON(x.Component)
		if err != nil {
			return nil, err
		}
		out.Name = handleName(x.Handle)
		out.Component = component
		out.Dimensions = x.Dimensions
	case *GenericArray:
		component, err := toJSON(x.Component)
		if err != nil {
			return nil, err
		}
		out.Component = component
	case *Wildcard:
		out.Bound = x.Bound.String()
		if x.Type != nil {
			bound, err := toJSON(x.Type)
			if err != nil {
				return nil, err
			}
			out.Type = bound
		}
	default:
		return nil, fmt.Errorf("marshal type: unsupported %T", t)
	}
	return out, nil
}

// Unmarshal decodes JSON produced by Marshal, resolving every class and
// array name through r.
func Unmarshal(data []byte, r Resolver) (Type, error) {
	var in jsonType
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal type: %w", err)
	}
	return fromJSON(&in, r, false)
}

// fromJSON rebuilds a node. Wildcards are only accepted when argument is
// set, i.e. directly inside a parameterized type's argument list.
func fromJSON(in *jsonType, r Resolver, argument bool) (Type, error) {
	if in == nil {
		return nil, fmt.Errorf("unmarshal type: missing node")
	}

	switch in.Kind {
	case "primitive":
		p, ok := ParsePrimitive(in.Name)
		if !ok {
			return nil, fmt.Errorf("unmarshal type: unknown primitive %q", in.Name)
		}
		return p, nil

	case "class":
		h, err := r.Resolve(in.Name)
		if err != nil {
			return nil, fmt.Errorf("unmarshal type: resolve %s: %w", in.Name, err)
		}
		return NewClass(h), nil

	case "parameterized":
		raw, err := fromJSON(in.Raw, r, false)
		if err != nil {
			return nil, err
		}
		class, ok := raw.(*Class)
		if !ok {
			return nil, fmt.Errorf("unmarshal type: raw type must be a class, got %s", raw.Kind())
		}
		if len(in.Args) == 0 {
			return nil, fmt.Errorf("unmarshal type: %s has no type arguments", class.Name())
		}
		args := make([]Type, len(in.Args))
		for i, a := range in.Args {
			if args[i], err = fromJSON(a, r, true); err != nil {
				return nil, err
			}
			if p, ok := args[i].(Primitive); ok {
				return nil, fmt.Errorf("unmarshal type: type argument of %s cannot be primitive %s", class.Name(), p)
			}
		}
		return NewParameterized(class, args...), nil

	case "array":
		component, err := fromJSON(in.Component, r, false)
		if err != nil {
			return nil, err
		}
		name, err := ArrayName(component, in.Dimensions)
		if err != nil {
			return nil, fmt.Errorf("unmarshal type: %w", err)
		}
		h, err := r.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("unmarshal type: resolve %s: %w", name, err)
		}
		return NewArray(component, in.Dimensions, h), nil

	case "genericArray":
		component, err := fromJSON(in.Component, r, false)
		if err != nil {
			return nil, err
		}
		switch component.(type) {
		case *Parameterized, *GenericArray:
		default:
			return nil, fmt.Errorf("unmarshal type: generic array component must be parameterized, got %s", component.Kind())
		}
		return NewGenericArray(component), nil

	case "wildcard":
		if !argument {
			return nil, fmt.Errorf("unmarshal type: wildcard outside a type argument list")
		}
		switch in.Bound {
		case "":
			return Unbounded(), nil
		case "extends", "super":
			bound, err := fromJSON(in.Type, r, false)
			if err != nil {
				return nil, err
			}
			if p, ok := bound.(Primitive); ok {
				return nil, fmt.Errorf("unmarshal type: wildcard bound cannot be primitive %s", p)
			}
			if in.Bound == "extends" {
				return Extends(bound), nil
			}
			return Super(bound), nil
		}
		return nil, fmt.Errorf("unmarshal type: unknown wildcard bound %q", in.Bound)
	}
	return nil, fmt.Errorf("unmarshal type: unknown kind %q", in.Kind)
}
