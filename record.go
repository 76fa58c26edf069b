package vahan

// Insurance status values derived from the expired-alert region.
const (
	InsuranceActive  = "Active"
	InsuranceExpired = "Expired"
)

// Assemble combines an Extraction into the nested record shape
// returned by the API, before normalization. Grouped fields prefer
// the section-scoped value and fall back to the related summary
// field; label spelling variants are coalesced here.
func Assemble(x *Extraction, brand string) map[string]any {
	insurance := map[string]any{
		"status":        InsuranceActive,
		"company":       x.Insurance["insurance_company"],
		"policy_number": x.Insurance["insurance_no"],
		"expiry_date":   x.Insurance["insurance_expiry"],
		"valid_upto":    x.Insurance["insurance_upto"],
	}
	if x.Expired {
		insurance["status"] = InsuranceExpired
		if x.ExpiredDays > 0 {
			insurance["expired_days_ago"] = x.ExpiredDays
		}
	}

	return map[string]any{
		"registration_number": x.Registration,
		"status":              "success",
		"powered_by":          brand,
		"basic_info": map[string]any{
			"model_name": x.ModelName,
			"owner_name": x.OwnerName,
			"city":       x.City,
			"phone":      x.Phone,
			"address":    x.Address,
		},
		"ownership_details": map[string]any{
			"owner_name":   coalesce(x.Ownership["owner_name"], x.OwnerName),
			"fathers_name": x.Ownership["father's_name"],
			"serial_no":    x.Ownership["owner_serial_no"],
			"rto":          x.Ownership["registered_rto"],
		},
		"vehicle_details": map[string]any{
			"maker":            coalesce(x.Vehicle["model_name"], x.ModelName),
			"model":            x.Vehicle["maker_model"],
			"vehicle_class":    x.Vehicle["vehicle_class"],
			"fuel_type":        x.Vehicle["fuel_type"],
			"fuel_norms":       x.Vehicle["fuel_norms"],
			"cubic_capacity":   coalesce(x.Vehicle["cubic_capacity"], x.Other["cubic_capacity"]),
			"seating_capacity": coalesce(x.Vehicle["seating_capacity"], x.Other["seating_capacity"]),
		},
		"insurance": insurance,
		"validity": map[string]any{
			"registration_date": x.Validity["registration_date"],
			"vehicle_age":       x.Validity["vehicle_age"],
			"fitness_upto":      x.Validity["fitness_upto"],
			"insurance_upto":    x.Validity["insurance_upto"],
			"insurance_status":  x.Validity["insurance_expiry_in"],
			"tax_upto":          coalesce(x.Validity["tax_upto"], x.Validity["tax_paid_upto"]),
		},
		"puc_details": map[string]any{
			"puc_number":     x.PUC["puc_no"],
			"puc_valid_upto": x.PUC["puc_upto"],
		},
		"other_info": map[string]any{
			"financer":         coalesce(x.Other["financer_name"], x.Other["financier_name"]),
			"permit_type":      x.Other["permit_type"],
			"blacklist_status": x.Other["blacklist_status"],
			"noc":              x.Other["noc_details"],
		},
	}
}

// coalesce returns the first non-empty value.
func coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
