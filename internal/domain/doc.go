// Package domain models readings collected from Korean consumer services.
//
// # Data Source
//
// An upstream collector polls six unrelated services (KEPCO electricity
// usage, GasApp city-gas billing, Arisu water billing, GoodsFlow package
// tracking, SafeKorea disaster alerts, and KakaoMap transit routing) and
// publishes each raw response to the Kafka source topic wrapped in a small
// envelope (source name, device id, collection time, untouched vendor
// payload). The vendor payloads are JSON of wildly varying and unstable
// shape; nothing upstream validates them.
//
// # Extraction Conventions
//
// Each source has a fixed extraction spec mapping output field names to
// dotted paths into the vendor payload, e.g. KEPCO's previous-month bill at
// "result.BILL_LAST_MONTH" or GasApp's latest charge at
// "history[-1].chargeAmtQty". Paths support negative array indices because
// several vendors return newest-last history arrays. A path that resolves
// to nothing, or to a value of the wrong shape, produces an absent field,
// never an error: partial readings are the normal case.
//
// Date conventions vary per vendor and sometimes per field:
//
//	KEPCO:      "20250115" (compact), "2025.01.15"
//	GasApp:     "202501" (billing month)
//	SafeKorea:  "2025-01-15 10:30:21.0" (fractional seconds)
//	GoodsFlow:  "01/15 10" (month/day hour, year implied)
//	KakaoMap:   "2025년 1월 15일"
//
// All parsed dates are normalized to Asia/Seoul (fixed UTC+9, no DST).
//
// Coordinates attached to alert and transit payloads arrive in WCONGNAMUL,
// the planar grid of Korean web map services; readings carry them
// normalized to WGS84. Values outside the coarse Korea bounding box are
// dropped rather than fed to projection math that is not accurate there.
//
// # ID Generation
//
// Reading IDs are deterministic SHA-256 hashes of source|device|collected
// time. Reprocessing the same raw message yields the same ID, which keeps
// downstream upserts idempotent (ON CONFLICT DO NOTHING) without
// coordination.
package domain
