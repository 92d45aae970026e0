package session

// MatchKind classifies what a scanned code turned out to identify.
type MatchKind int

const (
	// ScanRejected means the code identified nothing scannable right now.
	ScanRejected MatchKind = iota

	// ScanMatchedOrder means the code was the active order's own barcode.
	ScanMatchedOrder

	// ScanMatchedProduct means the code identified an unfulfilled product line.
	ScanMatchedProduct
)

// String returns the wire name of the match kind.
func (k MatchKind) String() string {
	switch k {
	case ScanMatchedOrder:
		return "ORDER"
	case ScanMatchedProduct:
		return "PRODUCT"
	default:
		return "REJECTED"
	}
}

// FailReason explains a rejected scan.
type FailReason int

const (
	// ReasonNone accompanies successful scans.
	ReasonNone FailReason = iota

	// ReasonUnknownCode means the code matched neither the active order nor
	// any of its product lines.
	ReasonUnknownCode

	// ReasonLineComplete means the matched line was already fully scanned.
	ReasonLineComplete

	// ReasonOrderAlreadyScanned means the order barcode was scanned twice.
	ReasonOrderAlreadyScanned
)

func (r FailReason) String() string {
	switch r {
	case ReasonUnknownCode:
		return "code not part of this order's products"
	case ReasonLineComplete:
		return "already fully scanned"
	case ReasonOrderAlreadyScanned:
		return "order barcode already scanned"
	default:
		return ""
	}
}

// ScanResult is the verdict of matching one scanned code against the active
// order. It is a closed record: Kind says what matched, Reason is set only
// on rejection, SKU only on a product match.
type ScanResult struct {
	Kind    MatchKind
	SKU     string
	Message string
	Reason  FailReason
}

// Success reports whether the scan matched anything.
func (r ScanResult) Success() bool {
	return r.Kind != ScanRejected
}
