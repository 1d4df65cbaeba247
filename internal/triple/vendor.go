package triple

// Vendor is the vendor field. In practice it is little more than an arbitrary
// modifier.
type Vendor uint8

const (
	VendorUnknown Vendor = iota
	VendorApple
	VendorExperimental
	VendorFortanix
	VendorPc
	VendorRumprun
	VendorSun

	vendorCount
)

var vendorNames = [vendorCount]string{
	VendorUnknown:      "unknown",
	VendorApple:        "apple",
	VendorExperimental: "experimental",
	VendorFortanix:     "fortanix",
	VendorPc:           "pc",
	VendorRumprun:      "rumprun",
	VendorSun:          "sun",
}

var vendorByName = lookupTable[Vendor](vendorNames[:])

func (v Vendor) String() string { return nameOf(vendorNames[:], v, "Vendor") }

// ParseVendor recognises a vendor name.
func ParseVendor(s string) (Vendor, bool) {
	v, ok := vendorByName[s]
	return v, ok
}
