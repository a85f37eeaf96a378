// Package translation maps English terms to Turkish translations.
package translation

import (
	"fmt"
	"strings"
)

// turkish holds the known translations, keyed by lowercase term
var turkish = map[string]string{
	"abate":        "Azalmak, dinmek",
	"benevolent":   "İyiliksever, hayırsever",
	"candid":       "Açık sözlü, samimi",
	"diligent":     "Çalışkan, gayretli",
	"ephemeral":    "Geçici, kısa ömürlü",
	"frugal":       "Tutumlu, mütevazı",
	"gregarious":   "Sosyal, sürü halinde",
	"hypothesis":   "Hipotez, varsayım",
	"inevitable":   "Kaçınılmaz",
	"jubilant":     "Sevinçli, coşkulu",
	"accommodate":  "Barındırmak, uyum sağlamak",
	"accurate":     "Doğru, kesin",
	"acknowledge":  "Kabul etmek, onaylamak",
	"acquire":      "Edinmek, kazanmak",
	"advocate":     "Savunmak, desteklemek",
	"allocate":     "Ayırmak, tahsis etmek",
	"analyze":      "Analiz etmek, incelemek",
	"approach":     "Yaklaşmak, yaklaşım",
	"appropriate":  "Uygun, yerinde",
	"assess":       "Değerlendirmek, ölçmek",
	"assume":       "Varsaymak, üstlenmek",
	"authority":    "Yetki, otorite",
	"benefit":      "Yarar, fayda",
	"category":     "Kategori, sınıf",
	"circumstance": "Durum, şart",
	"commit":       "Taahhüt etmek, kararlılık göstermek",
	"communicate":  "İletişim kurmak",
	"concept":      "Kavram, fikir",
	"conclude":     "Sonuçlandırmak, bitirmek",
	"conduct":      "Yürütmek, davranmak",
	"consequence":  "Sonuç, netice",
	"consist":      "Oluşmak, ibaret olmak",
	"constant":     "Sabit, sürekli",
	"constitute":   "Oluşturmak, teşkil etmek",
	"construct":    "İnşa etmek, kurmak",
	"context":      "Bağlam, durum",
	"contribute":   "Katkıda bulunmak",
	"demonstrate":  "Göstermek, kanıtlamak",
	"derive":       "Türetmek, elde etmek",
	"distribute":   "Dağıtmak, paylaştırmak",
	"economy":      "Ekonomi, tasarruf",
	"environment":  "Çevre, ortam",
	"establish":    "Kurmak, tesis etmek",
	"estimate":     "Tahmin etmek",
	"evident":      "Açık, belli",
	"expand":       "Genişletmek, büyümek",
	"factor":       "Faktör, etken",
	"function":     "İşlev, fonksiyon",
	"identify":     "Tanımlamak, belirlemek",
	"illustrate":   "Örneklemek, göstermek",
	"implement":    "Uygulamak, yerine getirmek",
	"imply":        "Ima etmek, anlamına gelmek",
	"indicate":     "Göstermek, belirtmek",
}

// Translate returns the Turkish translation of term.
// Unknown terms get a placeholder that still names the term.
//
// TODO: back the table with a translation API once a provider is picked.
func Translate(term string) string {
	if t, ok := turkish[strings.ToLower(term)]; ok {
		return t
	}
	return Placeholder(term)
}

// Placeholder is the translation stored for terms missing from the table
func Placeholder(term string) string {
	return fmt.Sprintf("[Türkçe: \"%s\"]", term)
}

// Known reports whether the table has a translation for term
func Known(term string) bool {
	_, ok := turkish[strings.ToLower(term)]
	return ok
}
