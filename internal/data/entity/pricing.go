package entity

type PricingItem struct {
	Name        string   `yaml:"name" json:"name"`
	Price       int      `yaml:"price" json:"price"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
}

type PricingCatalog struct {
	Plans  []PricingItem `yaml:"plans" json:"plans"`
	AddOns []PricingItem `yaml:"addOns" json:"addOns"`
}
