package searchindex

import "testing"

func TestItemTypeFromCode_AllKnownCodes(t *testing.T) {
	t.Parallel()

	for code := 0; code < numItemTypes; code++ {
		got := itemTypeFromCode(byte(code))
		if int(got) != code {
			t.Errorf("code %d: got %v (%d)", code, got, int(got))
		}
	}
}

func TestItemTypeFromCode_Fallback(t *testing.T) {
	t.Parallel()

	for _, code := range []byte{28, 57, 100, 255} {
		if got := itemTypeFromCode(code); got != ItemTypeModule {
			t.Errorf("code %d: got %v, want module fallback", code, got)
		}
	}
}

func TestItemTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  ItemType
		want string
	}{
		{ItemTypeModule, "mod"},
		{ItemTypeStruct, "struct"},
		{ItemTypeFunction, "fn"},
		{ItemTypeTrait, "trait"},
		{ItemTypeMacro, "macro"},
		{ItemTypeTraitAlias, "traitalias"},
		{ItemType(99), "unknown"},
		{ItemType(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("ItemType(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestItemTypeString_AllNamed(t *testing.T) {
	t.Parallel()

	for i := 0; i < numItemTypes; i++ {
		if name := ItemType(i).String(); name == "" || name == "unknown" {
			t.Errorf("ItemType(%d) has no name", i)
		}
	}
}
