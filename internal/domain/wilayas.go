package domain

import "strings"

// WilayaSeed is one row of the fixed administrative-region reference list.
type WilayaSeed struct {
	Code int
	Name string
	Slug string
}

// WilayaTable enumerates the 58 wilayas. Seeded at migration time and used as
// the canonical resolution table for free-text region names in legacy data.
var WilayaTable = []WilayaSeed{
	{1, "Adrar", "adrar"},
	{2, "Chlef", "chlef"},
	{3, "Laghouat", "laghouat"},
	{4, "Oum El Bouaghi", "oum-el-bouaghi"},
	{5, "Batna", "batna"},
	{6, "Béjaïa", "bejaia"},
	{7, "Biskra", "biskra"},
	{8, "Béchar", "bechar"},
	{9, "Blida", "blida"},
	{10, "Bouira", "bouira"},
	{11, "Tamanrasset", "tamanrasset"},
	{12, "Tébessa", "tebessa"},
	{13, "Tlemcen", "tlemcen"},
	{14, "Tiaret", "tiaret"},
	{15, "Tizi Ouzou", "tizi-ouzou"},
	{16, "Algiers", "algiers"},
	{17, "Djelfa", "djelfa"},
	{18, "Jijel", "jijel"},
	{19, "Sétif", "setif"},
	{20, "Saïda", "saida"},
	{21, "Skikda", "skikda"},
	{22, "Sidi Bel Abbès", "sidi-bel-abbes"},
	{23, "Annaba", "annaba"},
	{24, "Guelma", "guelma"},
	{25, "Constantine", "constantine"},
	{26, "Médéa", "medea"},
	{27, "Mostaganem", "mostaganem"},
	{28, "M'Sila", "msila"},
	{29, "Mascara", "mascara"},
	{30, "Ouargla", "ouargla"},
	{31, "Oran", "oran"},
	{32, "El Bayadh", "el-bayadh"},
	{33, "Illizi", "illizi"},
	{34, "Bordj Bou Arréridj", "bordj-bou-arreridj"},
	{35, "Boumerdès", "boumerdes"},
	{36, "El Tarf", "el-tarf"},
	{37, "Tindouf", "tindouf"},
	{38, "Tissemsilt", "tissemsilt"},
	{39, "El Oued", "el-oued"},
	{40, "Khenchela", "khenchela"},
	{41, "Souk Ahras", "souk-ahras"},
	{42, "Tipaza", "tipaza"},
	{43, "Mila", "mila"},
	{44, "Aïn Defla", "ain-defla"},
	{45, "Naâma", "naama"},
	{46, "Aïn Témouchent", "ain-temouchent"},
	{47, "Ghardaïa", "ghardaia"},
	{48, "Relizane", "relizane"},
	{49, "Timimoun", "timimoun"},
	{50, "Bordj Badji Mokhtar", "bordj-badji-mokhtar"},
	{51, "Ouled Djellal", "ouled-djellal"},
	{52, "Béni Abbès", "beni-abbes"},
	{53, "In Salah", "in-salah"},
	{54, "In Guezzam", "in-guezzam"},
	{55, "Touggourt", "touggourt"},
	{56, "Djanet", "djanet"},
	{57, "El M'Ghair", "el-mghair"},
	{58, "El Meniaa", "el-meniaa"},
}

// ResolveWilayaName resolves a free-text region name to its canonical wilaya
// by case-insensitive exact name (or slug) match. Unmatched names are left to
// the caller to pass through as raw text rather than failing an import.
func ResolveWilayaName(raw string) (WilayaSeed, bool) {
	needle := strings.TrimSpace(raw)
	if needle == "" {
		return WilayaSeed{}, false
	}
	for _, w := range WilayaTable {
		if strings.EqualFold(w.Name, needle) || strings.EqualFold(w.Slug, needle) {
			return w, true
		}
	}
	return WilayaSeed{}, false
}
