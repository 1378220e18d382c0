package searchindex

// ItemType is the kind of a documented item. The numeric values match the
// type-code column: the i-th character of the t string, offset from 'A'.
type ItemType int

const (
	ItemTypeMutRef ItemType = iota
	ItemTypePrimitiveOrBuiltin
	ItemTypeModule
	ItemTypeExternCrate
	ItemTypeImport
	ItemTypeStruct
	ItemTypeEnum
	ItemTypeFunction
	ItemTypeTypedef
	ItemTypeStatic
	ItemTypeTrait
	ItemTypeImpl
	ItemTypeTyMethod
	ItemTypeMethod
	ItemTypeStructField
	ItemTypeVariant
	ItemTypeMacro
	ItemTypePrimitive
	ItemTypeAssocConst
	ItemTypeAssocType
	ItemTypeConstant
	ItemTypeUnion
	ItemTypeForeignType
	ItemTypeKeyword
	ItemTypeOpaqueTy
	ItemTypeProcAttribute
	ItemTypeProcDerive
	ItemTypeTraitAlias

	numItemTypes = int(ItemTypeTraitAlias) + 1
)

var itemTypeNames = [numItemTypes]string{
	"mutref",
	"primitive",
	"mod",
	"externcrate",
	"import",
	"struct",
	"enum",
	"fn",
	"type",
	"static",
	"trait",
	"impl",
	"tymethod",
	"method",
	"structfield",
	"variant",
	"macro",
	"primitive",
	"associatedconstant",
	"associatedtype",
	"constant",
	"union",
	"foreigntype",
	"keyword",
	"opaque",
	"attr",
	"derive",
	"traitalias",
}

func (t ItemType) String() string {
	if t < 0 || int(t) >= numItemTypes {
		return "unknown"
	}
	return itemTypeNames[t]
}

// itemTypeFromCode maps a type-code offset to an ItemType. Unknown codes
// fall back to ItemTypeModule so one bad character cannot abort decoding
// the rest of an otherwise valid crate.
func itemTypeFromCode(code byte) ItemType {
	if int(code) < numItemTypes {
		return ItemType(code)
	}
	return ItemTypeModule
}
