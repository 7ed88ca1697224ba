package config

import "strings"

// boardLabels maps a board label prefix (the text before the final revision
// suffix, e.g. "DMG-A07" for "DMG-A07-01") to its layout. A few labels carry
// no revision suffix and are keyed in full.
var boardLabels = map[string]string{
	"0200309E4-01": "tama",
	"AAAC S":       "rom",
	"CGB-A32":      "mbc6",
	"DMG-A02":      "rom_mapper_ram",
	"DMG-A03":      "rom_mapper_ram",
	"DMG-A04":      "rom_mapper_ram",
	"DMG-A06":      "rom_mapper_ram",
	"DMG-A07":      "rom_mapper",
	"DMG-A08":      "rom_mapper_ram",
	"DMG-A09":      "rom_mapper",
	"DMG-A10":      "rom_mapper",
	"DMG-A11":      "rom_mapper_ram",
	"DMG-A12":      "rom_mapper_ram",
	"DMG-A13":      "rom_mapper",
	"DMG-A14":      "rom_mapper_ram",
	"DMG-A15":      "type_15",
	"DMG-A16":      "rom_mapper_ram",
	"DMG-A18":      "rom_mapper",
	"DMG-A40":      "mbc7",
	"DMG-A47":      "mbc7",
	"DMG-AAA":      "rom",
	"DMG-BBA":      "rom_mapper",
	"DMG-BCA":      "rom_mapper",
	"DMG-BEAN":     "rom_mapper",
	"DMG-BEAN(K)":  "rom_mapper",
	"DMG-BFAN":     "rom_mapper",
	"DMG-DECN":     "rom_mapper_ram",
	"DMG-DECN(K)":  "rom_mapper_ram",
	"DMG-DEDN":     "rom_mapper_ram",
	"DMG-DFCN":     "rom_mapper_ram",
	"DMG-DGCU":     "rom_mapper_ram",
	"DMG-GDAN":     "mbc2",
	"DMG-KECN":     "rom_mapper_ram_xtal",
	"DMG-KFCN":     "rom_mapper_ram_xtal",
	"DMG-KFDN":     "rom_mapper_ram_xtal",
	"DMG-KGDU":     "rom_mapper_ram_xtal",
	"DMG-LFDN":     "rom_mapper_ram",
	"DMG-M-BFAN":   "rom_mapper",
	"DMG-MC-DFCN":  "rom_mapper_ram",
	"DMG-MC-SFCN":  "rom_mapper_ram",
	"DMG-MHEU":     "rom_mapper_ram_xtal",
	"DMG-TEDN":     "rom_mapper_ram",
	"DMG-TFDN":     "rom_mapper_ram",
	"DMG-UEDT":     "huc3",
	"DMG-UFDT":     "huc3",
	"DMG-UGDU":     "huc3",
	"DMG-Z01":      "rom_mapper_ram",
	"DMG-Z02":      "rom_mapper_ram",
	"DMG-Z03":      "rom_mapper_ram",
	"DMG-Z04":      "rom_mapper_ram",
}

// LayoutFromBoardLabel infers the board layout from a full board label.
// The revision suffix after the rightmost dash is stripped first; labels
// without a matching prefix are tried verbatim.
func LayoutFromBoardLabel(label string) (string, bool) {
	if pos := strings.LastIndex(label, "-"); pos >= 0 {
		if layout, ok := boardLabels[label[:pos]]; ok {
			return layout, true
		}
	}
	layout, ok := boardLabels[label]
	return layout, ok
}
