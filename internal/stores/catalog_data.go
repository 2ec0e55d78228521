package stores

import (
	"github.com/tempustours/tempus-backend/internal/models"
)

// Destination catalog. Prices are per person, in denarii.

var civilizations = []models.Civilization{
	{
		ID:              "egypt",
		Name:            "Ancient Egypt",
		Description:     "The mysterious land of pyramids and pharaohs, where ancient wonders await.",
		LongDescription: "Experience the majesty of one of the world's oldest civilizations along the timeless Nile River. Marvel at the architectural genius of the Great Pyramids, stand in awe before the enigmatic Sphinx, and wander through the magnificent temples of Luxor and Karnak. Explore the bustling markets of Alexandria, founded by Alexander the Great himself! From hieroglyphics to mummification, Egypt offers a journey through time that no Roman citizen should miss.",
		Regions:         []string{"Giza", "Luxor", "Alexandria"},
		AccentColor:     "accentEgypt",
		KeyAttractions: []string{
			"Great Pyramids",
			"Sphinx",
			"Temple of Karnak",
			"Library of Alexandria",
		},
		LocalCurrency:      "Deben",
		TravelTimeFromRome: "3 weeks by sea",
		DangerLevel:        "Low - Egypt is a Roman province with excellent roads and security",
		BestSeasonToVisit:  "Winter (when the heat is tolerable)",
		Image:              "egypt.jpg",
	},
	{
		ID:              "greece",
		Name:            "Ancient Greece",
		Description:     "Birthplace of democracy, philosophy, and Olympic games.",
		LongDescription: "Visit the cultural cradle of the Mediterranean where philosophy, democracy, and the Olympic games were born. Ascend the Acropolis to behold the architectural marvel of the Parthenon. Wander through Athens, where Socrates, Plato, and Aristotle once debated in the agora. Test your physical prowess in Olympia, birthplace of the sacred games. Experience the spiritual awe of the Oracle at Delphi. Though Greece is now part of our glorious Roman Empire, the unique cultural heritage remains intact and is a must-see for any educated citizen.",
		Regions:         []string{"Athens", "Sparta", "Delphi", "Olympia"},
		AccentColor:     "accentGreece",
		KeyAttractions: []string{
			"Parthenon",
			"Delphi Oracle",
			"Olympic Stadium",
			"Agora of Athens",
		},
		LocalCurrency:      "Drachma (though Roman coins accepted everywhere)",
		TravelTimeFromRome: "2 weeks by sea, 3 weeks by land",
		DangerLevel:        "Very Low - Roman presence ensures excellent safety",
		BestSeasonToVisit:  "Spring or Autumn",
		Image:              "greece.jpg",
	},
	{
		ID:              "china",
		Name:            "Ancient China",
		Description:     "The mysterious Far East, land of silk and innovations.",
		LongDescription: "Journey to the fabled land of Serica (as we Romans call it), the realm of silk at the very edge of the known world. This mysterious eastern empire rivals our own in grandeur and innovation. Marvel at the Great Wall, stretching across mountains and deserts. Witness the terracotta army of Emperor Qin Shi Huang, a legion of clay warriors buried to protect their emperor in the afterlife. Sample exotic delicacies and bring back treasured silks and spices that fetch astronomical prices in Roman markets. Note: This destination requires special travel permits and a certified guide from the Merchant Guild of Alexandria.",
		Regions:         []string{"Chang'an", "Luoyang", "Silk Road Oases"},
		AccentColor:     "accentChina",
		KeyAttractions: []string{
			"Great Wall",
			"Terracotta Army",
			"Imperial Palace",
			"Silk Markets",
		},
		LocalCurrency:      "Ban Liang coins (Bring silver for trade)",
		TravelTimeFromRome: "8 months via Silk Road caravans",
		DangerLevel:        "High - Requires armed escort and official permissions",
		BestSeasonToVisit:  "Autumn (avoid monsoon season)",
		Image:              "china.jpg",
	},
	{
		ID:              "persia",
		Name:            "Persia",
		Description:     "Luxurious palaces and exotic gardens in the land of the Parthians.",
		LongDescription: "Venture into the domain of Rome's greatest rival, the Parthian Empire. Through special diplomatic arrangements, Roman citizens can now explore the wonders of ancient Persia (with proper documentation). Visit the stunning capital of Ctesiphon with its enormous vaulted arch, the largest in the world. Wander through the ruins of Persepolis, the ceremonial capital of the former Achaemenid Empire. Travel the famed Royal Road and marvel at the sophisticated postal system. Experience Persian luxury with their elaborate gardens, intricate carpets, and legendary hospitality. A destination for the bold Roman traveler!",
		Regions:         []string{"Ctesiphon", "Persepolis", "Ecbatana"},
		AccentColor:     "accentPersia",
		KeyAttractions: []string{
			"Arch of Ctesiphon",
			"Persepolis Palace",
			"Royal Road",
			"Hanging Gardens",
		},
		LocalCurrency:      "Drachms (Roman gold solidi highly valued)",
		TravelTimeFromRome: "2 months by land routes",
		DangerLevel:        "Moderate - Requires special permits and escort",
		BestSeasonToVisit:  "Spring, when the gardens are in bloom",
		Image:              "persia.jpg",
	},
	{
		ID:              "carthage",
		Name:            "Carthage",
		Description:     "Once Rome's greatest enemy, now a thriving Roman province in North Africa.",
		LongDescription: "Visit the reborn city that once challenged Rome for Mediterranean supremacy! After being famously destroyed and rebuilt by Romans, Carthage is now a magnificent showcase of Roman urban planning while still preserving elements of its Punic heritage. Explore the busy harbor that once housed the mighty Carthaginian fleet, stroll through the unique tophet sanctuary, and enjoy the stunning Roman baths with views of the Mediterranean. The famous amphitheater hosts spectacular gladiatorial games, and the local cuisine offers a delicious blend of African, Roman, and Phoenician flavors. A historically significant destination just a short sea journey from Rome!",
		Regions:         []string{"Carthage City", "Utica", "Cape Bon"},
		AccentColor:     "accentEgypt",
		KeyAttractions: []string{
			"Antonine Baths",
			"Byrsa Hill",
			"Amphitheater",
			"Punic Ports",
		},
		LocalCurrency:      "Roman currency (denarii and sestertii)",
		TravelTimeFromRome: "5 days by sea in good weather",
		DangerLevel:        "Very Low - Well-established Roman province",
		BestSeasonToVisit:  "Spring or Autumn (summer is extremely hot)",
		Image:              "carthage.jpg",
	},
}

var tours = []models.Tour{
	{
		ID:              "egypt-1",
		CivilizationID:  "egypt",
		Name:            "Pyramids & Sphinx Expedition",
		Description:     "Witness the architectural marvels of Ancient Egypt on this 10-day journey.",
		LongDescription: "Marvel at the only surviving Wonder of the World on this premium tour of Giza and Memphis. Your Roman guide, a former legion officer who served in the Egyptian province, will explain how these massive structures were built without modern machinery. You'll have exclusive access to chambers normally closed to the public, and a private audience with Egyptian priests who will explain their mysterious religion and customs. Tour includes a boat journey on the sacred Nile and accommodation in a luxury villa with Roman amenities.",
		Duration:        10,
		Price:           1200,
		Difficulty:      "Moderate",
		Included: []string{
			"Luxury accommodation",
			"Local guides",
			"Meals",
			"Private riverboat tour",
			"Camel transportation",
		},
		Highlights: []string{
			"Private access to Pyramid chambers",
			"Sphinx viewing at sunset",
			"Meeting with Egyptian priests",
			"Traditional banquet",
		},
		StartingPoint: "Alexandria port",
		MaxTravelers:  12,
		Image:         "egypt-tour-1.jpg",
		Reviews: []models.Review{
			{
				Author:  "Gaius Valerius",
				Rating:  5,
				Comment: "By Jupiter! These Egyptians build like they have the gods' assistance. Our guide Marcus knew everything about their strange animal gods. Worth every denarius!",
			},
			{
				Author:  "Livia Juliana",
				Rating:  4,
				Comment: "The Pyramids are truly impressive. One star deducted for the heat and sand that gets everywhere. Bring a good slave to fan you!",
			},
		},
	},
	{
		ID:              "egypt-2",
		CivilizationID:  "egypt",
		Name:            "Alexandria Literary Tour",
		Description:     "Explore the intellectual capital of the Mediterranean and its Great Library.",
		LongDescription: "Immerse yourself in the intellectual legacy of Alexandria, founded by Alexander the Great himself. The centerpiece of your tour will be VIP access to the Great Library of Alexandria, the largest repository of knowledge in the world. Meet with scholars and learn about papyrus-making, astronomy, and mathematics. This tour focuses on the Hellenistic and Roman influence in Egypt, with accommodations in a Greek-style villa near the famous Lighthouse. Perfect for philosophers, writers, and educated patricians looking for intellectual stimulation.",
		Duration:        7,
		Price:           900,
		Difficulty:      "Easy",
		Included: []string{
			"Scholar-led tours",
			"Papyrus-making workshop",
			"Luxury accommodation",
			"All meals",
			"Port transfers",
		},
		Highlights: []string{
			"Great Library of Alexandria",
			"Lighthouse viewing",
			"Philosophical banquet",
			"Ptolemaic palace tour",
		},
		StartingPoint: "Alexandria port",
		MaxTravelers:  8,
		Image:         "egypt-tour-2.jpg",
		Reviews: []models.Review{
			{
				Author:  "Cicero Secundus",
				Rating:  5,
				Comment: "The Library is more impressive than the Senate archives! Brought back three scrolls of Egyptian medicine. Our philosophical discussions with local scholars were enlightening.",
			},
		},
	},
	{
		ID:              "greece-1",
		CivilizationID:  "greece",
		Name:            "Athenian Democracy Experience",
		Description:     "Walk in the footsteps of the great philosophers and statesmen of Athens.",
		LongDescription: "Experience the birthplace of democracy and philosophy on this intellectual journey through Athens. Visit the Acropolis and Parthenon with an expert guide who will explain how these barbarians (albeit sophisticated ones) laid the groundwork for many Roman institutions. Participate in a recreated assembly debate on the Pnyx hill, visit the agora where Socrates taught, and enjoy symposium-style dinners with poetry and philosophical discussions. This tour is ideal for senators, lawyers, and educated citizens interested in the origins of our political systems.",
		Duration:        8,
		Price:           800,
		Difficulty:      "Easy",
		Included: []string{
			"4-star accommodation",
			"Philosophical guide",
			"Daily breakfast and dinner",
			"Symposium experience",
			"Theater performance",
		},
		Highlights: []string{
			"Acropolis and Parthenon",
			"Ancient Agora",
			"Mock assembly debate",
			"Olympic Stadium",
		},
		StartingPoint: "Piraeus port",
		MaxTravelers:  15,
		Image:         "greece-tour-1.jpg",
		Reviews: []models.Review{
			{
				Author:  "Senator Gracchus",
				Rating:  5,
				Comment: "As a senator, I found their \"democracy\" quaint but fascinating. The guide was excellent at comparing Greek and Roman governance. The symposium was most enjoyable, though their wine needs work.",
			},
		},
	},
	{
		ID:              "greece-2",
		CivilizationID:  "greece",
		Name:            "Spartan Military Training",
		Description:     "Test your strength and endurance in the ultimate warrior society.",
		LongDescription: "Challenge yourself with this unique physical experience in the footsteps of Sparta's legendary warriors. This intensive tour includes daily training sessions led by former legionaries who have studied Spartan techniques, simplified battle reenactments, and tactical discussions. Visit the historic battlefields of Thermopylae and learn about the famous 300. Accommodations are intentionally austere (though with Roman baths available) to replicate the Spartan experience. Participants receive a replica Spartan shield (aspis) to take home.",
		Duration:        5,
		Price:           650,
		Difficulty:      "Very Difficult",
		Included: []string{
			"Military-style accommodation",
			"Training equipment",
			"All meals (authentically plain)",
			"Battlefield tours",
			"Replica shield",
		},
		Highlights: []string{
			"Daily training regimen",
			"Battle tactics workshop",
			"Thermopylae visit",
			"Warrior feast finale",
		},
		StartingPoint: "Gythio port",
		MaxTravelers:  20,
		Image:         "greece-tour-2.jpg",
		Reviews: []models.Review{
			{
				Author:  "Centurion Maximus",
				Rating:  4,
				Comment: "Good physical challenge, though our Roman training is superior. The Spartan shield is a fine souvenir. One warning: the \"authentic\" sleeping arrangements are truly spartan!",
			},
		},
	},
	{
		ID:              "china-1",
		CivilizationID:  "china",
		Name:            "Silk Road Expedition",
		Description:     "Travel the legendary trade route to the edge of the known world.",
		LongDescription: "Embark on the journey of a lifetime along the famous Silk Road, following in the footsteps of brave merchants who bring exotic goods to Rome. This premium caravan experience takes you through deserts, mountains, and oases to reach the western frontier of the mysterious Seres (China). Learn the art of silk trading, jade identification, and caravan diplomacy. Meet with actual merchants and diplomats. Due to the length and complexity of this journey, travelers must pass a health examination before booking. Includes comfortable accommodations at the finest inns and caravanserais along the route, with Roman-style bathing facilities installed where possible.",
		Duration:        90,
		Price:           8000,
		Difficulty:      "Extreme",
		Included: []string{
			"Luxury caravan transport",
			"Armed escort",
			"All accommodations",
			"Meals",
			"Trading permits",
			"Silk purchasing rights",
		},
		Highlights: []string{
			"Desert crossing",
			"Mountain passes",
			"Silk markets",
			"Diplomatic meetings with local officials",
		},
		StartingPoint: "Antioch",
		MaxTravelers:  8,
		Image:         "china-tour-1.jpg",
		Reviews: []models.Review{
			{
				Author:  "Merchant Crassus",
				Rating:  5,
				Comment: "A life-changing journey! The profits from my silk purchases have already paid for the trip twice over. The Chinese technology is astonishing. Bring gifts for local officials to ensure smooth passage.",
			},
		},
	},
	{
		ID:              "china-2",
		CivilizationID:  "china",
		Name:            "Terracotta Army & Imperial Wonders",
		Description:     "Witness the clay army of Emperor Qin and the splendors of the Han Dynasty.",
		LongDescription: "This exclusive tour brings you to the heart of Serica (China), to witness wonders that few Romans have seen. The centerpiece is the awe-inspiring Terracotta Army - thousands of life-sized clay soldiers buried to protect Emperor Qin in the afterlife. Then visit the Han imperial capital of Chang'an, a city that rivals Rome in size and grandeur. Learn about Chinese engineering, including their paper-making technology, advanced metallurgy, and mysterious compass devices. This rare opportunity includes special diplomatic permissions and is led by a multilingual guide familiar with both Roman and Chinese customs. A truly once-in-a-lifetime experience for elite Roman travelers.",
		Duration:        120,
		Price:           12000,
		Difficulty:      "Hard",
		Included: []string{
			"Diplomatic escort",
			"Luxury accommodations",
			"Imperial banquets",
			"Private viewings",
			"Translation services",
			"Silk Road transport",
		},
		Highlights: []string{
			"Terracotta Army exclusive access",
			"Imperial palace visit",
			"Technology demonstrations",
			"Luxury silk workshop",
		},
		StartingPoint: "Antioch",
		MaxTravelers:  6,
		Image:         "china-tour-2.jpg",
		Reviews: []models.Review{
			{
				Author:  "Senator Antonius",
				Rating:  5,
				Comment: "Worth every denarius of the considerable cost! The Terracotta Army left me speechless - their emperor must have been as powerful as our Caesar. The distant journey is arduous but well-managed by the tour company.",
			},
		},
	},
	{
		ID:              "persia-1",
		CivilizationID:  "persia",
		Name:            "Royal Persian Experience",
		Description:     "Live like Persian royalty amidst stunning palaces and legendary gardens.",
		LongDescription: "Experience the luxurious lifestyle of our great rivals, the Parthians, with this diplomatic tour to the heart of Persia. Through special arrangements with Parthian authorities, Roman citizens can now visit Ctesiphon and other Persian cities with proper documentation. Stay in authentic Persian palaces, wander through the famous paradise gardens, and enjoy exotic cuisine including the strange \"sugar\" delicacy. Tour the massive Arch of Ctesiphon, the largest single-span arch in the world. Special diplomatic exemptions allow Romans to observe (but not participate in) Zoroastrian fire ceremonies. This tour requires signed diplomatic waivers and includes an armed escort throughout.",
		Duration:        14,
		Price:           3000,
		Difficulty:      "Moderate",
		Included: []string{
			"Palace accommodation",
			"Diplomatic escort",
			"Luxury meals",
			"Paradise garden tours",
			"Royal Road travel",
		},
		Highlights: []string{
			"Ctesiphon Arch",
			"Royal banquet",
			"Paradise gardens",
			"Carpet workshop",
		},
		StartingPoint: "Syrian border at Dura-Europos",
		MaxTravelers:  10,
		Image:         "persia-tour-1.jpg",
		Reviews: []models.Review{
			{
				Author:  "Patricius Aurelius",
				Rating:  4,
				Comment: "Their luxury rivals anything in Rome! The arch at Ctesiphon is truly impressive. Constant reminders that we are in enemy territory were sobering, but the diplomatic arrangements worked smoothly. Try the strange iced fruit desserts!",
			},
		},
	},
	{
		ID:              "carthage-1",
		CivilizationID:  "carthage",
		Name:            "Carthaginian Legacy Tour",
		Description:     "Explore the reborn city that once rivaled Rome.",
		LongDescription: "Visit the famous city that once challenged Rome for Mediterranean dominance in this historically fascinating tour. See how Roman engineering and urban planning transformed the destroyed Punic city into a Roman masterpiece while still preserving elements of its unique heritage. Tour the famous harbor that once housed Hannibal's fleet, now serving Roman merchant vessels. Visit the stunning Antonine Baths, largest outside of Rome itself. Enjoy authentic Carthaginian cuisine with Roman influences. This tour offers a perfect introduction to Roman Africa and includes optional day trips to nearby Roman settlements. Comfortable villa accommodation with ocean views makes this an ideal introduction to foreign travel for Roman citizens.",
		Duration:        7,
		Price:           600,
		Difficulty:      "Easy",
		Included: []string{
			"Villa accommodation",
			"Harbor cruise",
			"Bath access",
			"All meals",
			"Local wine tasting",
		},
		Highlights: []string{
			"Antonine Baths",
			"Reconstructed harbor",
			"Byrsa Hill",
			"Punic ruins",
		},
		StartingPoint: "Ostia port",
		MaxTravelers:  20,
		Image:         "carthage-tour-1.jpg",
		Reviews: []models.Review{
			{
				Author:  "Julia Tertia",
				Rating:  5,
				Comment: "A perfect first journey outside Italy! The baths are magnificent, and our guide's stories about the Punic Wars from the Carthaginian perspective were fascinating. The African sun is intense - bring a good hat!",
			},
		},
	},
}
