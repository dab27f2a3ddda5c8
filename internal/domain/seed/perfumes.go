package seed

import "app/internal/domain/model"

// Perfumes はDBが空・取得失敗のときに使う同梱カタログ。
// 店頭が空にならないためのフォールバックで、DB行と同じ形（カテゴリは保存表記、
// notesはカンマ区切り）で返し、通常のマッピングをそのまま通す。
func Perfumes() []model.Perfume {
	return []model.Perfume{
		{
			ID:          1,
			Brand:       "Dior",
			Name:        "Sauvage",
			Category:    "Men",
			Price:       150,
			NotesTop:    "Calabrian Bergamot, Pepper",
			NotesMiddle: "Lavender, Pink Pepper, Vetiver, Patchouli, Geranium",
			NotesBase:   "Ambroxan, Cedar, Labdanum",
			Description: "A radically fresh composition, dictated by a name that has the ring of a manifesto. Sauvage is raw and noble at once.",
			ImageURL:    "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          2,
			Brand:       "Dior",
			Name:        "Homme Intense",
			Category:    "Men",
			Price:       165,
			NotesTop:    "Lavender, Iris",
			NotesMiddle: "Ambrette, Pear",
			NotesBase:   "Virginia Cedar, Vetiver",
			Description: "An elegant woody floral fragrance with an unprecedented iris signature.",
			ImageURL:    "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          3,
			Brand:       "Chanel",
			Name:        "Bleu de Chanel EDT",
			Category:    "Men",
			Price:       155,
			NotesTop:    "Citrus, Mint, Pink Pepper",
			NotesMiddle: "Grapefruit, Dry Cedar Notes, Labdanum",
			NotesBase:   "Ginger, Sandalwood, Patchouli, Vetiver, Incense, Cedar",
			Description: "A woody aromatic fragrance for the man who defies convention, unexpectedly fresh and clean.",
			ImageURL:    "https://images.unsplash.com/photo-1595425970377-c9703cf48b6d?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          4,
			Brand:       "Chanel",
			Name:        "Allure Homme Sport",
			Category:    "Men",
			Price:       140,
			NotesTop:    "Orange, Aldehydes",
			NotesMiddle: "Neroli, Cedar",
			NotesBase:   "White Musk, Amber, Tonka Bean",
			Description: "A fresh and sensual composition that combines energy and elegance.",
			ImageURL:    "https://images.unsplash.com/photo-1541643600914-78b084683601?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          5,
			Brand:       "Creed",
			Name:        "Aventus",
			Category:    "Men",
			Price:       445,
			NotesTop:    "Pineapple, Bergamot, Black Currant, Apple",
			NotesMiddle: "Birch, Patchouli, Moroccan Jasmine, Rose",
			NotesBase:   "Musk, Oak Moss, Ambergris, Vanille",
			Description: "A sophisticated blend celebrating strength, vision and success with fresh fruity top notes.",
			ImageURL:    "https://images.unsplash.com/photo-1590736969955-71cc94901144?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          6,
			Brand:       "Prada",
			Name:        "Luna Rossa Carbon",
			Category:    "Men",
			Price:       120,
			NotesTop:    "Bergamot, Pepper",
			NotesMiddle: "Lavender",
			NotesBase:   "Metallic Notes, Patchouli, Ambroxan",
			Description: "A fresh and modern fougère reinvented with a magnetic mineral accord.",
			ImageURL:    "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          7,
			Brand:       "Chanel",
			Name:        "Coco Mademoiselle",
			Category:    "Women",
			Price:       165,
			NotesTop:    "Orange, Bergamot, Grapefruit",
			NotesMiddle: "Rose, Jasmine, Litchi",
			NotesBase:   "Patchouli, Vetiver, Vanilla, White Musk",
			Description: "An irresistible fresh oriental fragrance, a whiff of provocative essence.",
			ImageURL:    "https://images.unsplash.com/photo-1588405748880-12d1d2a59f75?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          8,
			Brand:       "Chanel",
			Name:        "N°5",
			Category:    "Women",
			Price:       175,
			NotesTop:    "Aldehydes, Neroli, Ylang-Ylang, Bergamot, Lemon",
			NotesMiddle: "Jasmine, Rose, Lily-of-the-Valley, Iris",
			NotesBase:   "Sandalwood, Vetiver, Vanilla, Amber, Musk, Cedar",
			Description: "The timeless legend, an abstract bouquet of aldehydic florals.",
			ImageURL:    "https://images.unsplash.com/photo-1541643600914-78b084683601?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          9,
			Brand:       "Dior",
			Name:        "J'adore",
			Category:    "Women",
			Price:       155,
			NotesTop:    "Pear, Melon, Magnolia, Peach, Bergamot, Mandarin Orange",
			NotesMiddle: "Jasmine, Lily-of-the-Valley, Tuberose, Rose, Plum, Violet, Orchid, Freesia",
			NotesBase:   "Blackberry, Musk, Cedar, Vanilla",
			Description: "A vibrant floral bouquet that embodies absolute femininity.",
			ImageURL:    "https://images.unsplash.com/photo-1595535873420-a599195b3f4a?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          10,
			Brand:       "Dior",
			Name:        "Miss Dior",
			Category:    "Women",
			Price:       145,
			NotesTop:    "Blood Orange, Mandarin Orange",
			NotesMiddle: "Rose, Peony",
			NotesBase:   "Musk, Rosewood",
			Description: "A fresh and romantic eau de parfum, an ode to love and optimism.",
			ImageURL:    "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          11,
			Brand:       "Yves Saint Laurent",
			Name:        "Black Opium",
			Category:    "Women",
			Price:       145,
			NotesTop:    "Pink Pepper, Orange Blossom, Pear",
			NotesMiddle: "Coffee, Jasmine, Bitter Almond, Licorice",
			NotesBase:   "Vanilla, Patchouli, Cedar, Cashmere Wood",
			Description: "A highly addictive feminine fragrance with the signature coffee note.",
			ImageURL:    "https://images.unsplash.com/photo-1590736969955-71cc94901144?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          12,
			Brand:       "Lancôme",
			Name:        "La Vie Est Belle",
			Category:    "Women",
			Price:       135,
			NotesTop:    "Black Currant, Pear",
			NotesMiddle: "Iris, Jasmine, Orange Blossom",
			NotesBase:   "Praline, Vanilla, Patchouli, Tonka Bean",
			Description: "A declaration of happiness and freedom, life is beautiful.",
			ImageURL:    "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          13,
			Brand:       "Creed",
			Name:        "Silver Mountain Water",
			Category:    "Unisex",
			Price:       395,
			NotesTop:    "Bergamot, Mandarin Orange, Neroli, Green Tea",
			NotesMiddle: "Green Tea, Galbanum",
			NotesBase:   "Musk, Sandalwood, Petit Grain",
			Description: "A cool and crisp scent evoking the rush of alpine spring water.",
			ImageURL:    "https://images.unsplash.com/photo-1541643600914-78b084683601?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          14,
			Brand:       "Maison Francis Kurkdjian",
			Name:        "Gentle Fluidity Gold",
			Category:    "Unisex",
			Price:       295,
			NotesTop:    "Coriander, Juniper Berries, Nutmeg",
			NotesMiddle: "Rum Absolute, Musk",
			NotesBase:   "Vanilla, Sandalwood, Amber",
			Description: "An oriental vanilla, warm and luminous, exploring the fluidity of gender.",
			ImageURL:    "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          15,
			Brand:       "Le Labo",
			Name:        "Santal 33",
			Category:    "Unisex",
			Price:       310,
			NotesTop:    "Cardamom, Iris, Violet",
			NotesMiddle: "Ambrox, Australian Sandalwood, Papyrus",
			NotesBase:   "Cedarwood, Leather, Musk",
			Description: "A legendary sandalwood scent that became a cult icon.",
			ImageURL:    "https://images.unsplash.com/photo-1590736969955-71cc94901144?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          16,
			Brand:       "Le Labo",
			Name:        "Another 13",
			Category:    "Unisex",
			Price:       320,
			NotesTop:    "Moss Accord",
			NotesMiddle: "Ambroxan, Jasmine Petals",
			NotesBase:   "Musk, Moss",
			Description: "A magnetic musky abstraction, a collaboration with AnOther Magazine.",
			ImageURL:    "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          17,
			Brand:       "Byredo",
			Name:        "Gypsy Water",
			Category:    "Unisex",
			Price:       275,
			NotesTop:    "Bergamot, Lemon, Pepper",
			NotesMiddle: "Incense, Pine Needles, Orris",
			NotesBase:   "Sandalwood, Vanilla, Amber",
			Description: "A romanticized vision of the Roma people and their free spirit.",
			ImageURL:    "https://images.unsplash.com/photo-1547887538-e3a2f32cb1cc?w=500&h=600&fit=crop",
			IsActive:    true,
		},
		{
			ID:          18,
			Brand:       "Byredo",
			Name:        "Bal d'Afrique",
			Category:    "Unisex",
			Price:       275,
			NotesTop:    "Bergamot, Lemon, Neroli, African Marigold",
			NotesMiddle: "Violet, Jasmine Petals, Cyclamen, Buchu",
			NotesBase:   "Black Amber, Musk, Vetiver, Moroccan Cedarwood",
			Description: "A celebration of Africa through the prism of 1920s Paris.",
			ImageURL:    "https://images.unsplash.com/photo-1600612253971-422b1a45d4fe?w=500&h=600&fit=crop",
			IsActive:    true,
		},
	}
}
