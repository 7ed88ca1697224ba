// Package mapper implements the memory bank controller domain: the closed set
// of canonical mapper identifiers and the submission classifier.
package mapper

// ID is a canonical memory bank controller identifier. The set is fixed and
// never extended at runtime.
type ID string

const (
	MBC1  ID = "mbc1"
	MBC2  ID = "mbc2"
	MBC3  ID = "mbc3"
	MBC30 ID = "mbc30"
	MBC5  ID = "mbc5"
	MBC6  ID = "mbc6"
	MBC7  ID = "mbc7"
	MMM01 ID = "mmm01"
	HuC1  ID = "huc1"
	HuC3  ID = "huc3"
	TAMA5 ID = "tama5"

	// NoMapper marks hardware known to carry no mapper chip at all.
	NoMapper ID = "no-mapper"
)

// revisions maps a hardware revision string, as printed on the chip package,
// to its canonical identifier. Multiple revisions of the same controller fold
// into one entry.
var revisions = map[string]ID{
	"MBC1":   MBC1,
	"MBC1A":  MBC1,
	"MBC1B":  MBC1,
	"MBC1B1": MBC1,
	"MBC2":   MBC2,
	"MBC2A":  MBC2,
	"MBC3":   MBC3,
	"MBC3A":  MBC3,
	"MBC3B":  MBC3,
	"MBC30":  MBC30,
	"MBC5":   MBC5,
	"MBC6":   MBC6,
	"MBC7":   MBC7,
	"MMM01":  MMM01,
	"HuC-1":  HuC1,
	"HuC1":   HuC1,
	"HuC-1A": HuC1,
	"HuC-3":  HuC3,
	"HuC3":   HuC3,
	"TAMA5":  TAMA5,
}

// FromRevision resolves a hardware revision string to its canonical
// identifier.
func FromRevision(kind string) (ID, bool) {
	id, ok := revisions[kind]
	return id, ok
}

// displayNames maps identifiers to the name shown on rendered pages.
var displayNames = map[ID]string{
	MBC1:     "MBC1",
	MBC2:     "MBC2",
	MBC3:     "MBC3",
	MBC30:    "MBC30",
	MBC5:     "MBC5",
	MBC6:     "MBC6",
	MBC7:     "MBC7",
	MMM01:    "MMM01",
	HuC1:     "HuC-1",
	HuC3:     "HuC-3",
	TAMA5:    "TAMA5",
	NoMapper: "No mapper",
}

// DisplayName returns the human readable name of the identifier.
func (id ID) DisplayName() string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return string(id)
}
