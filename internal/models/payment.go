package models

// PaymentMethod is one of the fixed out-of-band payment options. Each maps
// to a static instruction block shown once the method is selected; there is
// no payment processor behind any of them.
type PaymentMethod struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{
	{
		Name:         "Cash",
		Instructions: "Pay 50% deposit now to secure your appointment. Bring remaining 50% at pickup.",
	},
	{
		Name:         "Cash App",
		Instructions: "Send 50% deposit to: $BlueMoonHaven",
	},
	{
		Name:         "Venmo",
		Instructions: "Send 50% deposit to: @BlueMoonHaven to secure your appointment.",
	},
	{
		Name:         "PayPal",
		Instructions: "Send 50% deposit to: @BlueMoonHaven to secure your appointment.",
	},
	{
		Name:         "Zelle",
		Instructions: "Use Zelle to send 50% deposit to: (805) 555-0164 to secure your appointment.",
	},
}

// PaymentInstructions returns the instruction block for a method name, or
// false when the method is not one of the accepted set.
func PaymentInstructions(name string) (string, bool) {
	for _, m := range PaymentMethods {
		if m.Name == name {
			return m.Instructions, true
		}
	}

	return "", false
}
