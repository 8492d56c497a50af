package storage

const (
	PrefixAccount       = 1
	PrefixObjectAccount = 2
	PrefixObject        = 3
	PrefixLegacyAccount = 4

	PrefixAccountsForModule = 5
)
