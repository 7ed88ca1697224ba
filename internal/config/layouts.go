package config

// ChipRole identifies the function of one chip position on a cartridge board.
type ChipRole string

const (
	RoleUnknown       ChipRole = "unknown"
	RoleRom           ChipRole = "rom"
	RoleMapper        ChipRole = "mapper"
	RoleRam           ChipRole = "ram"
	RoleRamBackup     ChipRole = "ram_backup"
	RoleCrystal       ChipRole = "crystal"
	RoleFlash         ChipRole = "flash"
	RoleEeprom        ChipRole = "eeprom"
	RoleAccelerometer ChipRole = "accelerometer"
	RoleLineDecoder   ChipRole = "line_decoder"
	RoleTama          ChipRole = "tama"
	RoleHexInverter   ChipRole = "hex_inverter"
)

// ChipSlot pairs a board designator (U1, U2, ..., X1) with the role of the
// chip populating it.
type ChipSlot struct {
	Designator string
	Role       ChipRole
}

// Layout is a fixed description of which chip roles a board variant contains.
type Layout struct {
	ID    string
	Chips []ChipSlot
}

// HasRole reports whether any chip slot in the layout carries the given role.
func (l Layout) HasRole(role ChipRole) bool {
	for _, chip := range l.Chips {
		if chip.Role == role {
			return true
		}
	}
	return false
}

// layouts is the closed set of known board layouts. The chip role assignments
// follow the physical designators printed on each board family.
var layouts = map[string]Layout{
	"rom": {
		ID: "rom",
		Chips: []ChipSlot{
			{"U1", RoleRom},
		},
	},
	"rom_mapper": {
		ID: "rom_mapper",
		Chips: []ChipSlot{
			{"U1", RoleRom},
			{"U2", RoleMapper},
		},
	},
	"rom_mapper_ram": {
		ID: "rom_mapper_ram",
		Chips: []ChipSlot{
			{"U1", RoleRom},
			{"U2", RoleMapper},
			{"U3", RoleRam},
			{"U4", RoleRamBackup},
		},
	},
	"rom_mapper_ram_xtal": {
		ID: "rom_mapper_ram_xtal",
		Chips: []ChipSlot{
			{"U1", RoleRom},
			{"U2", RoleMapper},
			{"U3", RoleRam},
			{"U4", RoleRamBackup},
			{"X1", RoleCrystal},
		},
	},
	"mbc2": {
		ID: "mbc2",
		Chips: []ChipSlot{
			{"U1", RoleRom},
			{"U2", RoleMapper},
			{"U3", RoleRamBackup},
		},
	},
	"mbc6": {
		ID: "mbc6",
		Chips: []ChipSlot{
			{"U1", RoleMapper},
			{"U2", RoleRom},
			{"U3", RoleFlash},
			{"U4", RoleRam},
			{"U5", RoleRamBackup},
		},
	},
	"mbc7": {
		ID: "mbc7",
		Chips: []ChipSlot{
			{"U1", RoleMapper},
			{"U2", RoleRom},
			{"U3", RoleEeprom},
			{"U4", RoleAccelerometer},
		},
	},
	"type_15": {
		ID: "type_15",
		Chips: []ChipSlot{
			{"U1", RoleRom},
			{"U2", RoleMapper},
			{"U3", RoleRam},
			{"U4", RoleRamBackup},
			{"U5", RoleRom},
			{"U6", RoleLineDecoder},
		},
	},
	"huc3": {
		ID: "huc3",
		Chips: []ChipSlot{
			{"U1", RoleRom},
			{"U2", RoleMapper},
			{"U3", RoleRam},
			{"U4", RoleRamBackup},
			{"U5", RoleHexInverter},
			{"X1", RoleCrystal},
		},
	},
	// TAMA5 boards carry the mapper logic inside the TAMA chipset, so no slot
	// is tagged with the plain mapper role.
	"tama": {
		ID: "tama",
		Chips: []ChipSlot{
			{"U1", RoleTama},
			{"U2", RoleTama},
			{"U3", RoleTama},
			{"U4", RoleUnknown},
			{"U5", RoleRamBackup},
			{"X1", RoleCrystal},
		},
	},
}
