// Package styling holds the static per-body-type styling knowledge base.
//
// The table is built once when the package is initialized and is never written afterwards,
// so concurrent readers need no synchronization. Lookups hand out deep copies.
package styling

import (
	"slices"

	"github.com/Veraticus/silhouette/internal/model"
)

var knowledgeBase = map[model.BodyType]model.StylingRule{
	model.BodyTypeRectangle: {
		Description: "Straight silhouette with similar bust and hip measurements",
		Goals:       []string{"Create curves", "Define waist", "Add volume to upper and lower body"},
		Tops: model.TopsGuide{
			Best:      []string{"tank tops", "wrap tops", "cowl camisole", "belted tops", "button-downs"},
			Necklines: []string{"scoop", "v-neck", "bateau", "off-shoulder", "sweetheart", "halter", "turtleneck", "crew", "cowl"},
			Avoid:     []string{"shapeless oversized pieces", "cropped tops at waist"},
		},
		Bottoms: model.BottomsGuide{
			Pants:  []string{"cargo pants", "harem pants", "wide leg", "bootcut", "turn-up"},
			Jeans:  []string{"slim", "straight", "bootcut", "wide leg", "trouser style"},
			Skirts: []string{"circle", "a-line", "bubble", "layered", "pencil", "pleated", "paneled", "trumpet", "straight", "gathered waist"},
			Shorts: []string{"bubble", "flared", "belted", "patterned", "loose", "turn-up", "paperbag waist"},
		},
		Dresses: []string{"wrap", "x-line", "shift", "empire", "princess seam", "a-line", "fit and flared", "one shoulder", "puff sleeves", "ruched waist"},
		Blazers: []string{"straight", "peplum", "structured", "double-breasted", "moto-jacket", "safari jacket", "empire waist"},
		Colors: model.ColorGuide{
			Do:    "Bold and bright colors for upper and lower body, dark belts for waist definition",
			Avoid: "Bold colors around waist area",
		},
	},

	model.BodyTypeHourglass: {
		Description: "Balanced shoulders and hips with defined waist",
		Goals:       []string{"Maintain natural curves", "Accentuate waist", "Keep proportions balanced"},
		Tops: model.TopsGuide{
			Best:      []string{"fitted shirts", "wrap shirts", "belted shirts", "peplum", "keyhole"},
			Necklines: []string{"scoop", "v-neck", "off-shoulder", "jewel", "oval", "sweetheart", "queen anne"},
			Sleeves:   []string{"set-in", "fitted", "bishop", "sleeveless"},
			Avoid:     []string{"heavy embroidery", "shoulder pads", "bulky details around bust"},
		},
		Bottoms: model.BottomsGuide{
			Jeans:  []string{"straight", "bootleg", "wide", "slim", "flared", "high/mid-rise"},
			Pants:  []string{"high/mid-rise styles that define waist"},
			Skirts: []string{"full", "pencil", "gored", "a-line", "tulip"},
			Shorts: []string{"tapered", "structured", "bermuda", "flared", "loose"},
		},
		Dresses:   []string{"bias", "peplum", "shift", "wrap", "corset", "sheath"},
		Jumpsuits: []string{"wide leg", "strapless", "belted", "flaring"},
		Coats:     []string{"a-line", "princess", "wrap", "belted", "trench", "swing", "capelet"},
		Colors: model.ColorGuide{
			Do:    "Simple, minimalistic pieces in solid colors",
			Avoid: "Overwhelming patterns that hide natural curves",
		},
	},

	model.BodyTypeTriangle: {
		Description: "Hips wider than shoulders with defined waist",
		Goals:       []string{"Balance proportions", "Add volume to upper body", "Minimize lower body volume"},
		Tops: model.TopsGuide{
			Best:      []string{"wrap bust", "slim fit", "cropped around hipline", "tie necks"},
			Necklines: []string{"bateau", "boat", "cowl", "off-shoulder", "heart", "sabrina", "sweetheart", "crew", "slash", "turtle"},
			Sleeves:   []string{"petal", "batwing", "cap", "tapered", "flutter", "juliet"},
			Details:   []string{"horizontal stripes", "bold patterns", "shoulder details"},
		},
		Bottoms: model.BottomsGuide{
			Pants:  []string{"high/mid rise", "flare", "bootcut", "straight", "wide-leg"},
			Jeans:  []string{"straight", "bootcut", "flare leg", "high/mid-rise", "wide-leg"},
			Skirts: []string{"a-line", "bias", "tulip", "straight", "wrap", "asymmetrical", "circle"},
			Shorts: []string{"high/mid-rise", "belted", "flare", "straight"},
		},
		Dresses: []string{"tulip", "a-line", "x-line", "empire", "off-shoulder", "wrap", "belted"},
		Outerwear: &model.Outerwear{
			Jackets: []string{"long shearling", "shrug", "trapeze", "cropped", "belted", "bolero"},
			Coats:   []string{"a-line", "empire", "princess", "belted", "trench", "wrap"},
		},
		Colors: model.ColorGuide{
			Do:    "Light and bright colors for upper body, darker shades for lower body",
			Avoid: "Bold details around hips",
		},
	},

	model.BodyTypeInvertedTriangle: {
		Description: "Shoulders broader than hips with athletic build",
		Goals:       []string{"Balance broad shoulders", "Add volume to lower body", "Create hip curves"},
		Tops: model.TopsGuide{
			Best:  []string{"soft flowing fabrics", "minimal shoulder details", "v-necks", "scoop necks"},
			Avoid: []string{"shoulder pads", "boat necks", "off-shoulder", "horizontal stripes on top"},
		},
		Bottoms: model.BottomsGuide{
			Pants:  []string{"wide leg", "flare", "bootcut", "palazzo", "straight with details"},
			Jeans:  []string{"flare", "wide leg", "bootcut", "boyfriend", "baggy"},
			Skirts: []string{"a-line", "circle", "pleated", "flare", "full", "layered"},
			Shorts: []string{"wide", "flare", "pleated", "cargo", "palazzo"},
		},
		Dresses: []string{"a-line", "fit and flare", "empire waist", "wrap", "off-shoulder (if balancing with volume below)"},
		Outerwear: &model.Outerwear{
			Jackets: []string{"peplum", "belted", "cropped", "fitted at waist"},
			Coats:   []string{"a-line", "flare", "princess", "wrap", "trench"},
		},
		Colors: model.ColorGuide{
			Do:    "Darker colors on top, brighter colors on bottom",
			Avoid: "Bold patterns or light colors that emphasize shoulders",
		},
	},
}

// Lookup returns the styling rule for a body type.
func Lookup(bodyType model.BodyType) (model.StylingRule, bool) {
	rule, ok := knowledgeBase[bodyType]
	if !ok {
		return model.StylingRule{}, false
	}
	return cloneRule(rule), true
}

// BodyTypes returns the body types the knowledge base covers, in display order.
func BodyTypes() []model.BodyType {
	var out []model.BodyType
	for _, bt := range model.AllBodyTypes() {
		if _, ok := knowledgeBase[bt]; ok {
			out = append(out, bt)
		}
	}
	return out
}

func cloneRule(r model.StylingRule) model.StylingRule {
	out := r
	out.Goals = slices.Clone(r.Goals)
	out.Dresses = slices.Clone(r.Dresses)
	out.Blazers = slices.Clone(r.Blazers)
	out.Jumpsuits = slices.Clone(r.Jumpsuits)
	out.Coats = slices.Clone(r.Coats)

	out.Tops = model.TopsGuide{
		Best:      slices.Clone(r.Tops.Best),
		Necklines: slices.Clone(r.Tops.Necklines),
		Sleeves:   slices.Clone(r.Tops.Sleeves),
		Details:   slices.Clone(r.Tops.Details),
		Avoid:     slices.Clone(r.Tops.Avoid),
	}
	out.Bottoms = model.BottomsGuide{
		Pants:  slices.Clone(r.Bottoms.Pants),
		Jeans:  slices.Clone(r.Bottoms.Jeans),
		Skirts: slices.Clone(r.Bottoms.Skirts),
		Shorts: slices.Clone(r.Bottoms.Shorts),
	}

	if r.Outerwear != nil {
		out.Outerwear = &model.Outerwear{
			Jackets: slices.Clone(r.Outerwear.Jackets),
			Coats:   slices.Clone(r.Outerwear.Coats),
		}
	}

	return out
}
