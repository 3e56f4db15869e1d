package classfile

import "testing"

func TestParseFieldDescriptor(t *testing.T) {
	tests := []struct {
		desc    string
		want    FieldType
		str     string
		wantErr bool
	}{
		{desc: "I", want: FieldType{BaseType: "int"}, str: "int"},
		{desc: "[[Z", want: FieldType{BaseType: "boolean", ArrayDepth: 2}, str: "boolean[][]"},
		{desc: "Ljava/lang/String;", want: FieldType{ClassName: "java/lang/String"}, str: "java.lang.String"},
		{desc: "[Ljava.lang.String;", want: FieldType{ClassName: "java.lang.String", ArrayDepth: 1}, str: "java.lang.String[]"},
		{desc: "", wantErr: true},
		{desc: "[[", wantErr: true},
		{desc: "V", wantErr: true},
		{desc: "II", wantErr: true},
		{desc: "Ljava/lang/String", wantErr: true},
		{desc: "L;", wantErr: true},
		{desc: "Ljava/lang/String;I", wantErr: true},
		{desc: "T", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFieldDescriptor(tt.desc)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFieldDescriptor(%q) error = %v, wantErr %v", tt.desc, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if *got != tt.want {
			t.Errorf("ParseFieldDescriptor(%q) = %+v, want %+v", tt.desc, *got, tt.want)
		}
		if got.String() != tt.str {
			t.Errorf("ParseFieldDescriptor(%q).String() = %q, want %q", tt.desc, got.String(), tt.str)
		}
		if got.IsArray() != (tt.want.ArrayDepth > 0) {
			t.Errorf("ParseFieldDescriptor(%q).IsArray() = %v", tt.desc, got.IsArray())
		}
	}
}

func TestFieldTypeIsPrimitive(t *testing.T) {
	if !(&FieldType{BaseType: "int"}).IsPrimitive() {
		t.Error("int IsPrimitive() = false, want true")
	}
	if (&FieldType{BaseType: "int", ArrayDepth: 1}).IsPrimitive() {
		t.Error("int[] IsPrimitive() = true, want false")
	}
	if (&FieldType{ClassName: "java/lang/String"}).IsPrimitive() {
		t.Error("String IsPrimitive() = true, want false")
	}
}

func TestNameConversion(t *testing.T) {
	tests := []struct {
		internal string
		source   string
	}{
		{"java/lang/String", "java.lang.String"},
		{"java/util/Map$Entry", "java.util.Map$Entry"},
		{"Toplevel", "Toplevel"},
	}
	for _, tt := range tests {
		if got := InternalToSourceName(tt.internal); got != tt.source {
			t.Errorf("InternalToSourceName(%q) = %q, want %q", tt.internal, got, tt.source)
		}
		if got := SourceToInternalName(tt.source); got != tt.internal {
			t.Errorf("SourceToInternalName(%q) = %q, want %q", tt.source, got, tt.internal)
		}
	}
}
