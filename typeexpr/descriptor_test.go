package typeexpr

import (
	"testing"
)

func TestArrayName(t *testing.T) {
	tests := []struct {
		component Type
		dims      int
		want      string
		wantErr   bool
	}{
		{Int, 1, "[I", false},
		{Boolean, 3, "[[[Z", false},
		{Long, 2, "[[J", false},
		{tString, 1, "[Ljava.lang.String;", false},
		{cls("java.util.Map$Entry"), 2, "[[Ljava.util.Map$Entry;", false},
		{Void, 1, "", true},
		{Int, 0, "", true},
		{NewParameterized(tList, tString), 1, "", true},
		{Unbounded(), 1, "", true},
	}
	for _, tt := range tests {
		got, err := ArrayName(tt.component, tt.dims)
		if (err != nil) != tt.wantErr {
			t.Errorf("ArrayName(%v, %d) error = %v, wantErr %v", tt.component, tt.dims, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ArrayName(%v, %d) = %q, want %q", tt.component, tt.dims, got, tt.want)
		}
	}
}

func TestParseArrayName(t *testing.T) {
	tests := []struct {
		name    string
		want    ArrayComponent
		wantErr bool
	}{
		{name: "[I", want: ArrayComponent{Primitive: Int, Dimensions: 1}},
		{name: "[[D", want: ArrayComponent{Primitive: Double, Dimensions: 2}},
		{name: "[Ljava.lang.String;", want: ArrayComponent{ClassName: "java.lang.String", Dimensions: 1}},
		{name: "[[Ljava/util/List;", want: ArrayComponent{ClassName: "java.util.List", Dimensions: 2}},
		{name: "I", wantErr: true},
		{name: "java.lang.String", wantErr: true},
		{name: "[", wantErr: true},
		{name: "[V", wantErr: true},
		{name: "[Q", wantErr: true},
		{name: "[II", wantErr: true},
		{name: "[Ljava.lang.String", wantErr: true},
		{name: "[L;", wantErr: true},
		{name: "[Ljava.lang.String;x", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseArrayName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseArrayName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArrayName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestArrayNameRoundTrip(t *testing.T) {
	for _, component := range []Type{Byte, Char, Float, Short, tInteger} {
		for dims := 1; dims <= 3; dims++ {
			name, err := ArrayName(component, dims)
			if err != nil {
				t.Fatalf("ArrayName(%v, %d) error: %v", component, dims, err)
			}
			ac, err := ParseArrayName(name)
			if err != nil {
				t.Fatalf("ParseArrayName(%q) error: %v", name, err)
			}
			if ac.Dimensions != dims {
				t.Errorf("ParseArrayName(%q).Dimensions = %d, want %d", name, ac.Dimensions, dims)
			}
			if got := string(ac.Primitive) + ac.ClassName; got != component.String() {
				t.Errorf("ParseArrayName(%q) component = %q, want %q", name, got, component)
			}
		}
	}
}

func TestDescriptor(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Void, "V"},
		{Int, "I"},
		{tString, "Ljava/lang/String;"},
		{cls("java.util.Map$Entry"), "Ljava/util/Map$Entry;"},
		{NewParameterized(tList, tString), "Ljava/util/List;"},
		{arr(Int, 2), "[[I"},
		{arr(tString, 1), "[Ljava/lang/String;"},
		{NewGenericArray(NewParameterized(tList, tString)), "[Ljava/util/List;"},
		{NewGenericArray(NewGenericArray(NewParameterized(tList, tString))), "[[Ljava/util/List;"},
		{Extends(tNumber), "Ljava/lang/Number;"},
		{Super(tInteger), "Ljava/lang/Object;"},
		{Unbounded(), "Ljava/lang/Object;"},
	}
	for _, tt := range tests {
		if got := Descriptor(tt.typ); got != tt.want {
			t.Errorf("Descriptor(%v) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestSignature(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Long, "J"},
		{tString, "Ljava/lang/String;"},
		{arr(Char, 1), "[C"},
		{NewParameterized(tList, Extends(tNumber)), "Ljava/util/List<+Ljava/lang/Number;>;"},
		{NewParameterized(tMap, tString, Unbounded()), "Ljava/util/Map<Ljava/lang/String;*>;"},
		{
			NewGenericArray(NewParameterized(tList, Super(tInteger))),
			"[Ljava/util/List<-Ljava/lang/Integer;>;",
		},
		{
			NewParameterized(tMap, tString, NewParameterized(tList, arr(Int, 1))),
			"Ljava/util/Map<Ljava/lang/String;Ljava/util/List<[I>;>;",
		},
	}
	for _, tt := range tests {
		if got := Signature(tt.typ); got != tt.want {
			t.Errorf("Signature(%v) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
