// catalog.go: the canonical species catalog. Earlier revisions carried
// near-identical copies of this data in multiple places; this is the single
// authoritative copy.
package species

var catalog = []Record{
	{
		Name:           "Eastern Diamondback Rattlesnake",
		ScientificName: "Crotalus adamanteus",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/d/dc/Crotalus_adamanteus.jpg",
		VenomType:      "Hemotoxic",
		Antidote:       "CroFab (Crotalidae Polyvalent Immune Fab)",
		Precautions: []string{
			"Seek immediate medical attention",
			"Keep the bitten area below heart level",
			"Remove jewelry or tight clothing near the bite",
			"Remain calm to slow venom spread",
			"Do not apply tourniquet or try to suck out venom",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The Eastern diamondback rattlesnake is the largest venomous snake in North America. It has a distinct pattern of diamond-shaped markings along its back and a rattle on its tail that it uses as a warning signal.",
		Distribution: "Southeastern United States, particularly Florida, Georgia, Alabama, Mississippi, and parts of North and South Carolina.",
	},
	{
		Name:           "Western Diamondback Rattlesnake",
		ScientificName: "Crotalus atrox",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/1/18/Western_diamondback_rattlesnake.jpg",
		VenomType:      "Hemotoxic",
		Antidote:       "CroFab (Crotalidae Polyvalent Immune Fab)",
		Precautions: []string{
			"Seek immediate medical attention",
			"Keep bite site immobilized and below heart level",
			"Remove constrictive items from the affected limb",
			"Note time of bite for medical professionals",
			"Do not cut the wound or attempt to suck out venom",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The Western diamondback rattlesnake is a heavy-bodied snake with a distinct triangular head. It has diamond-shaped markings along its back and alternating black and white rings on its tail, just above the rattle.",
		Distribution: "Southwestern United States and northern Mexico, including Texas, New Mexico, Arizona, southern California, Oklahoma, and into Mexico.",
	},
	{
		Name:           "Timber Rattlesnake",
		ScientificName: "Crotalus horridus",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/d/d3/Timber_Rattlesnake.jpg",
		VenomType:      "Hemotoxic with some neurotoxic components",
		Antidote:       "CroFab (Crotalidae Polyvalent Immune Fab)",
		Precautions: []string{
			"Get medical help immediately",
			"Remain calm and limit physical activity",
			"Position bite at or below heart level",
			"Clean wound with soap and water if medical care is delayed",
			"Take photo of snake if possible, but maintain safe distance",
		},
		ThreatLevel:  ThreatDangerous,
		Description:  "The timber rattlesnake has a variable color pattern with dark brown or black crossbands on a yellowish, grayish, or brownish background. Some specimens are mostly black. They have a distinctive rattle at the end of their tails.",
		Distribution: "Eastern United States from New Hampshire and Minnesota south to Texas and Florida, though populations are fragmented and declining in many areas.",
	},
	{
		Name:           "Copperhead",
		ScientificName: "Agkistrodon contortrix",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/6/68/Copperhead_snake_agkistrodon_contortrix.jpg",
		VenomType:      "Moderate hemotoxic",
		Antidote:       "CroFab (Crotalidae Polyvalent Immune Fab), though often not needed for mild bites",
		Precautions: []string{
			"Seek medical attention",
			"Keep bite site immobilized",
			"Clean the wound if medical care is delayed",
			"Remove jewelry and constricting items",
			"Monitor for allergic reactions or severe symptoms",
		},
		ThreatLevel:  ThreatModerate,
		Description:  "Copperheads have a distinctive pattern of coppery-colored hourglass-shaped crossbands on a lighter tan or pinkish background. They have a triangular head and vertical pupils.",
		Distribution: "Eastern and Central United States from Massachusetts to Nebraska and south to Texas and Florida.",
	},
	{
		Name:           "Eastern Coral Snake",
		ScientificName: "Micrurus fulvius",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/8/8f/Eastern_Coral_Snake_%28Micrurus_fulvius%29_%287222918220%29.jpg",
		VenomType:      "Neurotoxic",
		Antidote:       "North American Coral Snake Antivenin",
		Precautions: []string{
			"Seek immediate medical attention",
			"Minimize movement to slow venom spread",
			"Do not apply tourniquet or try to suck out venom",
			"Keep bitten area below the level of the heart if possible",
			"Note time of bite to report to medical professionals",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The Eastern coral snake has bright bands of red, yellow, and black, with the red and yellow bands touching. Remember the rhyme: \"Red touch yellow, kill a fellow; red touch black, venom lack.\"",
		Distribution: "Southeastern United States, particularly in wooded, sandy and marshy areas of Florida, Alabama, Georgia, South Carolina, and parts of North Carolina.",
	},
	{
		Name:           "Indian Cobra",
		ScientificName: "Naja naja",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/8/8e/Indian_Cobra.jpg",
		VenomType:      "Neurotoxic with some cytotoxic effects",
		Antidote:       "Polyvalent Anti-Snake Venom Serum (ASVS)",
		Precautions: []string{
			"Seek immediate medical attention",
			"Keep patient calm and limit movement",
			"Immobilize the bitten limb with a splint",
			"Remove any rings, watches or tight clothing",
			"Do not apply tourniquet or cut the wound",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The Indian cobra is a highly venomous snake with a distinctive hood that it spreads when threatened. It typically has a spectacle pattern on the back of its hood, though this may be absent in some specimens.",
		Distribution: "Throughout the Indian subcontinent, including India, Pakistan, Sri Lanka, Bangladesh, and parts of Nepal and Bhutan.",
	},
	{
		Name:           "Russell's Viper",
		ScientificName: "Daboia russelii",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/c/c7/Daboia_russelii.jpg",
		VenomType:      "Hemotoxic with coagulopathic effects",
		Antidote:       "Polyvalent Anti-Snake Venom Serum (ASVS)",
		Precautions: []string{
			"Seek immediate medical attention",
			"Immobilize the affected limb",
			"Keep patient calm and still",
			"Remove constrictive items from the affected limb",
			"Do not apply ice, cut the wound, or attempt to suck out venom",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "Russell's viper is a heavy-bodied snake with three rows of dark brown or black spots along its back on a yellowish or brownish background. It makes a loud hissing sound when threatened.",
		Distribution: "Throughout the Indian subcontinent, Southeast Asia, and parts of China and Taiwan.",
	},
	{
		Name:           "Common Krait",
		ScientificName: "Bungarus caeruleus",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/3/35/Common_krait_Cropped.jpg",
		VenomType:      "Strongly neurotoxic",
		Antidote:       "Polyvalent Anti-Snake Venom Serum (ASVS)",
		Precautions: []string{
			"Seek immediate medical attention",
			"Keep patient still to minimize venom spread",
			"Immobilize the bitten limb",
			"Remove constrictive items from the bitten area",
			"Monitor breathing as respiratory failure can occur",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The common krait is a slender, nocturnal snake with glossy black or bluish-black body and narrow white crossbands. It has a narrow head that is slightly distinct from the neck.",
		Distribution: "Throughout the Indian subcontinent, including India, Pakistan, Sri Lanka, Bangladesh, and Nepal.",
	},
	{
		Name:           "Saw-scaled Viper",
		ScientificName: "Echis carinatus",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/a/a2/Echis_carinatus_sochureki_1.jpg",
		VenomType:      "Hemotoxic with strong coagulopathic effects",
		Antidote:       "Polyvalent Anti-Snake Venom Serum (ASVS)",
		Precautions: []string{
			"Seek immediate medical attention",
			"Minimize movement to reduce venom circulation",
			"Immobilize the affected limb",
			"Remove jewelry or tight clothing near the bite",
			"Do not apply tourniquets or cut the wound",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The saw-scaled viper is a small but highly venomous snake with a rough, saw-like appearance caused by serrated scales it rubs together to create a warning sound. It has a characteristic pattern of wavy, zig-zag markings along its body.",
		Distribution: "Parts of India, Pakistan, Sri Lanka, and throughout the Middle East and parts of Africa.",
	},
	{
		Name:           "King Cobra",
		ScientificName: "Ophiophagus hannah",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/4/4d/King-Cobra.jpg",
		VenomType:      "Neurotoxic",
		Antidote:       "Specific King Cobra Antivenin or Polyvalent ASVS",
		Precautions: []string{
			"Seek immediate emergency medical care",
			"Keep victim calm and reduce physical activity",
			"Immobilize bitten limb below heart level",
			"Do not attempt first aid techniques that may cause harm",
			"Transport to hospital as quickly as possible",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The king cobra is the world's longest venomous snake, capable of growing over 18 feet long. It has a distinctive hood, olive-green, tan, or black coloration, and can rear up to a third of its body length when threatened.",
		Distribution: "Throughout India, especially in dense forests, and across Southeast Asia including southern China, Indonesia, and the Philippines.",
	},
	{
		Name:           "Eastern Brown Snake",
		ScientificName: "Pseudonaja textilis",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/8/81/Pseudonaja_textilis.jpg",
		VenomType:      "Neurotoxic and coagulopathic",
		Antidote:       "Brown Snake Antivenom",
		Precautions: []string{
			"Apply pressure-immobilization bandage",
			"Seek immediate medical attention",
			"Keep victim still and calm",
			"Do not wash the bite area (to preserve venom for identification)",
			"Record time of bite and symptoms",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The Eastern brown snake varies in color from tan to dark brown or almost black. It is slender with a small head barely distinct from the neck. They are fast-moving and highly defensive when threatened.",
		Distribution: "Eastern Australia from northern Queensland to South Australia, and parts of Papua New Guinea.",
	},
	{
		Name:           "Inland Taipan",
		ScientificName: "Oxyuranus microlepidotus",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/1/1a/Oxyuranus_microlepidotus_1.jpg",
		VenomType:      "Extremely potent neurotoxic and myotoxic",
		Antidote:       "Taipan Antivenom",
		Precautions: []string{
			"Apply pressure-immobilization bandage immediately",
			"Seek urgent medical attention",
			"Keep absolutely still to slow venom spread",
			"Do not wash bite site",
			"Keep affected limb immobilized below heart level",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The inland taipan is considered the world's most venomous snake. It has a dark tan to brownish color that darkens toward the tail, with a creamy belly. Its head is darker than the body and rounded in shape.",
		Distribution: "Arid central east Australia, particularly the Channel Country of southwestern Queensland and adjacent parts of South Australia, New South Wales, and the Northern Territory.",
	},
	{
		Name:           "Tiger Snake",
		ScientificName: "Notechis scutatus",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/9/97/Tiger_snake_-notechis_scutatus-_Tasmania.jpg",
		VenomType:      "Neurotoxic and coagulopathic",
		Antidote:       "Tiger Snake Antivenom",
		Precautions: []string{
			"Apply pressure-immobilization bandage",
			"Immobilize victim",
			"Seek immediate medical attention",
			"Do not wash the bite site",
			"Keep victim calm and reassured",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "Tiger snakes are highly variable in color, from yellow to black, often with distinct dark bands (like a tiger). They have a flat, broad head and can flatten their bodies when threatened.",
		Distribution: "Southern Australia, including Tasmania, southern and eastern Victoria, New South Wales, South Australia, and southwestern Western Australia.",
	},
	{
		Name:           "Common Death Adder",
		ScientificName: "Acanthophis antarcticus",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/1/1f/Acanthophis_antarcticus_-_Death_Adder.jpg",
		VenomType:      "Neurotoxic",
		Antidote:       "Death Adder Antivenom",
		Precautions: []string{
			"Apply pressure-immobilization bandage",
			"Seek immediate medical attention",
			"Keep victim still",
			"Do not wash the bite site",
			"Monitor breathing as respiratory failure can occur",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The death adder has a stout body, triangular head, and a thin tail ending in a spine-like tip that it uses as a lure. It varies in color from reddish to grayish-brown with darker crossbands.",
		Distribution: "Eastern and southern Australia, particularly in coastal regions and ranges from the Northern Territory to Victoria.",
	},
	{
		Name:           "Black Mamba",
		ScientificName: "Dendroaspis polylepis",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/5/55/Black_Mamba_%2814%29.jpg",
		VenomType:      "Strongly neurotoxic and cardiotoxic",
		Antidote:       "SAIMR Polyvalent Antivenom",
		Precautions: []string{
			"Seek immediate emergency medical care",
			"Apply pressure-immobilization bandage if trained",
			"Keep victim as still as possible",
			"Monitor breathing continuously",
			"Transport to hospital without delay",
		},
		ThreatLevel:  ThreatDeadly,
		Description:  "The black mamba is Africa's longest venomous snake and one of the fastest snakes in the world. Despite the name, its body is olive or grayish-brown; the name refers to the inky-black interior of its mouth, displayed when threatened.",
		Distribution: "Sub-Saharan Africa, in savannas, rocky hills, and open woodlands from Senegal east to Somalia and south to South Africa.",
	},
	{
		Name:           "Common Garter Snake",
		ScientificName: "Thamnophis sirtalis",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/9/9f/Coast_Garter_Snake.jpg",
		VenomType:      "Mild toxicity (not harmful to humans)",
		Antidote:       "None needed",
		Precautions: []string{
			"Clean bite area with soap and water",
			"Apply antiseptic if available",
			"Monitor for signs of infection",
		},
		ThreatLevel:  ThreatSafe,
		Description:  "The common garter snake typically has three light stripes running along its body on a darker background. The stripes may be yellow, green, blue, or white. The rest of the body is usually black, brown, gray, or olive.",
		Distribution: "Throughout North America, including Canada, United States, and Mexico. Adaptable to many environments including gardens, woodlands, fields, and wetlands.",
	},
	{
		Name:           "Ball Python",
		ScientificName: "Python regius",
		ImageURL:       "https://upload.wikimedia.org/wikipedia/commons/c/c5/Ball_python_lucy.JPG",
		VenomType:      "None (non-venomous constrictor)",
		Antidote:       "Not applicable",
		Precautions: []string{
			"Clean any bite with soap and water",
			"Apply antiseptic to prevent infection",
			"Seek medical attention if bite is severe",
		},
		ThreatLevel:  ThreatSafe,
		Description:  "The ball python is a non-venomous constrictor snake with a pattern of dark brown to black blotches on a lighter brown or tan background. It's named for its defensive behavior of curling into a ball with its head protected in the center.",
		Distribution: "Native to West and Central Africa but kept worldwide as a popular pet. Found in grasslands, savannas and sparsely wooded areas in its native range.",
	},
}
