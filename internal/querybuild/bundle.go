package querybuild

// Bundle is one flat filter term as sent by clients:
// {"field":"issuedTo","fieldType":"string","value":"0xabc","op":"eq","conjunction":true}
type Bundle struct {
	Field string `json:"field"`
	// FieldSuffix only told legacy clients' parameter names apart. Placeholders are
	// positional here, so it is accepted and ignored.
	FieldSuffix string    `json:"fieldSuffix,omitempty"`
	FieldType   FieldType `json:"fieldType"`
	Value       any       `json:"value"`
	Op          Op        `json:"op"`
	Conjunction bool      `json:"conjunction"`
}

// FromBundles lowers a flat bundle list into a predicate tree.
// Disjunctive bundles form one OR group that is AND-ed with every conjunctive bundle,
// keeping the relative order of each kind. Bundles of an unsupported field type are skipped.
func FromBundles(bundles []Bundle) Predicate {
	var ors Or
	var root And
	for _, b := range bundles {
		if b.FieldType != FieldTypeString && b.FieldType != FieldTypeNumber {
			continue
		}
		cond := Cond{Field: b.Field, Type: b.FieldType, Op: b.Op, Value: b.Value}
		if b.Conjunction {
			root = append(root, cond)
		} else {
			ors = append(ors, cond)
		}
	}

	if len(ors) > 0 {
		root = append(And{ors}, root...)
	}
	return root
}
