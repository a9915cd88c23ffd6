package domain

import "github.com/hanbit-labs/korea-sensor-etl/internal/geo"

// FieldSpec maps one output field to a dotted path in the vendor payload.
type FieldSpec struct {
	Name string
	Path string
	Kind FieldKind
}

// CoordSpec locates a coordinate pair inside the vendor payload.
type CoordSpec struct {
	XPath  string
	YPath  string
	System geo.System
}

// SourceSpec is the extraction recipe for one upstream service.
type SourceSpec struct {
	Name   string
	Fields []FieldSpec
	Coords *CoordSpec // nil when the source carries no position
}

// sourceRegistry holds the extraction specs for the six collected services.
// Paths follow each vendor's actual response shape; several use negative
// indices because histories arrive newest-last.
var sourceRegistry = map[string]SourceSpec{
	"kepco": {
		Name: "kepco",
		Fields: []FieldSpec{
			{Name: "customer_no", Path: "SESS_CUSTNO", Kind: KindString},
			{Name: "contract_type", Path: "SESS_CNTR_KND_NM", Kind: KindString},
			{Name: "meter_read_start", Path: "SESS_MR_ST_DT", Kind: KindDate},
			{Name: "meter_read_end", Path: "SESS_MR_END_DT", Kind: KindDate},
			{Name: "bill_last_month", Path: "result.BILL_LAST_MONTH", Kind: KindNumber},
			{Name: "bill_forecast", Path: "result.PREDICT_TOTAL_CHARGE_REV", Kind: KindNumber},
			{Name: "progressive_level", Path: "result.BILL_LEVEL", Kind: KindNumber},
			{Name: "usage_kwh", Path: "result.F_AP_QT", Kind: KindNumber},
		},
	},
	"gasapp": {
		Name: "gasapp",
		Fields: []FieldSpec{
			{Name: "billing_month", Path: "history[-1].requestYm", Kind: KindDate},
			{Name: "usage_qty", Path: "history[-1].usageQty", Kind: KindNumber},
			{Name: "charge_amount", Path: "history[-1].chargeAmtQty", Kind: KindNumber},
			{Name: "prev_usage_qty", Path: "history[-2].usageQty", Kind: KindNumber},
			{Name: "prev_charge_amount", Path: "history[-2].chargeAmtQty", Kind: KindNumber},
		},
	},
	"arisu": {
		Name: "arisu",
		Fields: []FieldSpec{
			{Name: "total_amount", Path: "total_amount", Kind: KindNumber},
			{Name: "current_usage", Path: "usage_info.current_usage", Kind: KindNumber},
			{Name: "address", Path: "customer_info.address", Kind: KindString},
			{Name: "payment_method", Path: "customer_info.payment_method", Kind: KindString},
			{Name: "overdue_amount", Path: "arrears_info.overdue_amount", Kind: KindNumber},
			{Name: "billing_month", Path: "billing_month", Kind: KindDate},
		},
	},
	"goodsflow": {
		Name: "goodsflow",
		Fields: []FieldSpec{
			{Name: "item_name", Path: "data.itemName", Kind: KindString},
			{Name: "status", Path: "data.trackingDetails[-1].kind", Kind: KindString},
			{Name: "last_location", Path: "data.trackingDetails[-1].where", Kind: KindString},
			{Name: "last_update", Path: "data.trackingDetails[-1].timeString", Kind: KindDate},
		},
	},
	"safetyalert": {
		Name: "safetyalert",
		Fields: []FieldSpec{
			{Name: "emergency_step", Path: "data[0].EMRGNCY_STEP_NM", Kind: KindString},
			{Name: "disaster_type", Path: "data[0].DSSTR_SE_NM", Kind: KindString},
			{Name: "message", Path: "data[0].MSG_CN", Kind: KindString},
			{Name: "area", Path: "data[0].RCV_AREA_NM", Kind: KindString},
			{Name: "registered_at", Path: "data[0].REGIST_DT", Kind: KindDate},
		},
		Coords: &CoordSpec{XPath: "region.x", YPath: "region.y", System: geo.SystemWCONGNAMUL},
	},
	"kakaomap": {
		Name: "kakaomap",
		Fields: []FieldSpec{
			{Name: "recommended_time", Path: "summary.recommended_route.time", Kind: KindNumber},
			{Name: "recommended_fare", Path: "summary.recommended_route.fare", Kind: KindNumber},
			{Name: "recommended_type", Path: "summary.recommended_route.type", Kind: KindString},
			{Name: "transfers", Path: "summary.recommended_route.transfers", Kind: KindNumber},
			{Name: "walking_distance", Path: "summary.recommended_route.walking_distance", Kind: KindNumber},
			{Name: "fastest_time", Path: "summary.fastest_route.time", Kind: KindNumber},
			{Name: "fastest_fare", Path: "summary.fastest_route.fare", Kind: KindNumber},
		},
		Coords: &CoordSpec{XPath: "start.x", YPath: "start.y", System: geo.SystemWCONGNAMUL},
	},
}

// SpecFor returns the extraction spec for a source name.
func SpecFor(source string) (SourceSpec, bool) {
	spec, ok := sourceRegistry[source]
	return spec, ok
}

// Sources lists the registered source names.
func Sources() []string {
	names := make([]string, 0, len(sourceRegistry))
	for name := range sourceRegistry {
		names = append(names, name)
	}
	return names
}
