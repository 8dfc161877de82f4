package faq

// Responses is the canonical FAQ table: free-text lowercase keys mapped to
// hand-authored answer text. Many keys are synonyms sharing identical
// answers; every key maps to exactly one answer and answers are immutable
// at runtime.
var Responses = map[string]string{
	// Core information
	"requirements": `🛂 **Visa Requirements**:
- Valid passport (Photocopy)
- 2x2 photo (white background)
- Training Certificate (if available)
- Diploma (Photocopy if available)
- Updated Resume
- Other supporting documents may be discussed during your assessment.`,
	"appointment":    "📅 We accept walk-in clients with or without an appointment, but we highly recommend booking an appointment first to ensure we can accommodate you promptly.",
	"hours":          "🕘 Open Monday to Saturday, 9:00 AM to 5:00 PM.",
	"business hours": "🕘 We're open Monday to Saturday, 9:00 AM to 5:00 PM.",
	"opportunities":  "💼 B1 Visa includes a 6-month care-giving training program with our partner homecare facilities in the US.",
	"located":        "📍 2F Unit 223, One Oasis Hub B, Ortigas Ext, Pasig City\n\n🗺️ Find us here: https://maps.app.goo.gl/o2rvHLBcUZhpDJfp8\n\n🎥 Location guide video: https://vt.tiktok.com/ZSyuUpdN6/",
	"map":            "📍 2F Unit 223, One Oasis Hub B, Ortigas Ext, Pasig City\n\n🗺️ Find us here: https://maps.app.goo.gl/o2rvHLBcUZhpDJfp8\n\n🎥 Location guide video: https://vt.tiktok.com/ZSyuUpdN6/",
	"location":       "📍 2F Unit 223, One Oasis Hub B, Ortigas Ext, Pasig City\n\n🗺️ Find us here: https://maps.app.goo.gl/o2rvHLBcUZhpDJfp8\n\n🎥 Location guide video: https://vt.tiktok.com/ZSyuUpdN6/",
	"website":        "🌐 Official Website: https://state101-travel-website.vercel.app/\n\nFor appointments and quick assistance, you can also contact us:\n📞 +63 905-804-4426 or +63 969-251-0672\n📧 state101ortigasbranch@gmail.com\n🗺️ Map: https://maps.app.goo.gl/o2rvHLBcUZhpDJfp8",
	"processing time": "⏳ Standard processing takes 2-4 weeks. Expedited services may be available.",
	"complex":        "🔍 For case-specific advice, please contact our specialists directly:\n📞 0961 084 2538\n📧 state101ortigasbranch@gmail.com",
	"status":         "🔄 For application status updates, please email us with your reference number or contact us at +63 905-804-4426 / +63 969-251-0672.",
	"urgent":         "⏰ For urgent concerns, call us at +63 905-804-4426 or +63 969-251-0672 during business hours.",
	"contact":        "📞 You can contact us directly: +63 905-804-4426 or +63 969-251-0672\n📧 state101ortigasbranch@gmail.com",

	// Pricing and payments
	"how much":        "💰 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"price":           "💰 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"cost":            "💰 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"fee":             "💰 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"payment":         "💳 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"payment options": "💳 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"pay":             "💳 All the details about our program will be discussed during the initial briefing and assessment at our office.",

	// Legitimacy
	"legit":                 "✅ Yes, our company is 100% legitimate. We’re officially registered and have a permit to operate issued by the Municipality of Pasig.",
	"is your company legit": "✅ Yes, our company is 100% legitimate. We’re officially registered and have a permit to operate issued by the Municipality of Pasig.",

	// Services
	"services":                   "🛂 We provide full assistance with US and Canada visa applications and processing.",
	"what services do you offer": "🛂 We provide full assistance with US and Canada visa applications and processing.",

	// Other countries
	"other countries":                           "🌍 We currently don’t offer visa assistance for other countries. Our services are focused on US and Canada visa processing.",
	"do you also offer visas to other countries": "🌍 We currently don’t offer visa assistance for other countries. Our services are focused on US and Canada visa processing.",

	// Program details and FAQs that redirect to briefing
	"program details":         "📝 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"details of your program": "📝 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"are trainings free":      "📝 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"is orientation free":     "📝 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"installment plans":       "📝 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"hidden charges":          "📝 All the details about our program will be discussed during the initial briefing and assessment at our office.",
	"consultation free":       "📝 All the details about our program will be discussed during the initial briefing and assessment at our office.",

	// Visa type offered
	"visa type":                   "🛂 We offer Non-Immigrant Visa for the US and Express Entry and other immigration pathways for Canada.",
	"what type of visa you offer": "🛂 We offer Non-Immigrant Visa for the US and Express Entry and other immigration pathways for Canada.",

	// Qualifications & policies
	"qualifications":             "✅ Open to applicants with or without prior training or experience. Applicants must be willing to undergo training and develop the necessary skills for the program.",
	"age limit":                  "👥 No age limit, provided the applicant is physically capable of performing the required tasks.",
	"is there genders required":  "⚧ Open to all genders.",
	"gender":                     "⚧ Open to all genders.",
	"does it accept graduates only": "🎓 Accepts both graduates and undergraduates.",
	"graduates":                  "🎓 Accepts both graduates and undergraduates.",

	// Additional FAQs
	"how can i contact your team":           "📞 You can contact us directly: +63 905-804-4426 or +63 969-251-0672\n📧 state101ortigasbranch@gmail.com",
	"is there a guarantee of visa approval": "✅ We are here to guide you from start to finish and help increase your chances of visa approval for US non-immigrant visas and Canada's Express Entry and other pathways.",
	"do you have student visa programs":     "🛂 We offer Non-Immigrant Visa for the US and Express Entry and other immigration pathways for Canada.",
	"how can i book an appointment":         "📝 To get started, please visit our website to complete the application form: https://state101-travel-website.vercel.app/services\n\nYour information is secure and used only for visa assessment.",
	"how can i start my application":        "📝 To get started, please visit our website to complete the application form: https://state101-travel-website.vercel.app/services\n\nYour information is secure and used only for visa assessment.",
	"what happens after i submit my documents": "📞 Expect a call within 24 hours as soon as we can handle your query.",
	"can i apply even if im outside metro manila": "📍 Yes, we assist clients nationwide. Business hours: Mon-Sat 9AM-5PM.",
	"can i walk in without an appointment":  "✅ Yes, we accept walk-in clients with or without an appointment, but we highly suggest booking an appointment for faster service.",
	"do you have a partner agency abroad":   "🏢 No, we are an independent and private company located at our main office in Pasig City, accredited by the Municipality of Pasig.",
	"is the orientation mandatory before applying": "🧭 Yes. We’ll orient you so you’re fully prepared and understand the process.",
	"what should i bring during the orientation day": "🧾 Bring the Initial Requirements. If you have questions, contact us for confirmation before your visit.",
	"how can i reschedule my orientation":   "📞 Please contact us directly at +63 905-804-4426 or +63 969-251-0672 to reschedule.",
	"do you have orientations in other branches": "🏢 No, we are only located at our Pasig City office.",
	"what documents are required to start processing": "🗂️ Provide the Initial Requirements. For a complete and personalized checklist, contact us.",
	"how do i submit my requirements":       "📤 Submit your requirements through our website: https://state101-travel-website.vercel.app/services\n\nYou can view all requirements and submit your application there.",
	"do you have social media":              "🌐 Yes. You can find our social media links at the bottom of our website.",
	"do you assist with pre-departure orientation": "🧭 Yes, we orient you before departure to help ensure you are fully prepared for your journey.",

	// Value proposition
	"why choose": `🌟 Why choose State101 Travel?
- Focused expertise: US and Canada visa assistance only, so guidance stays accurate and relevant.
- Official and registered: Private company accredited by the Municipality of Pasig.
- Clear, consistent info: Location, hours, and contacts are fixed and verified.
- Friendly process: We recommend booking an appointment for a smooth visit.

Contacts & Hours:
📍 2F Unit 223, One Oasis Hub B, Ortigas Ext, Pasig City
🗺️ Map: https://maps.app.goo.gl/o2rvHLBcUZhpDJfp8
🎥 Location guide: https://vt.tiktok.com/ZSyuUpdN6/
📞 +63 905-804-4426 or +63 969-251-0672
📧 state101ortigasbranch@gmail.com
⏰ Mon–Sat, 9:00 AM – 5:00 PM`,
}

// SynonymEntry binds a canonical intent to its trigger phrases. Entries are
// an ordered slice, not a map: registration order is a real priority in the
// regex router (first matching intent in table order wins).
type SynonymEntry struct {
	Intent  string
	Phrases []string
}

// IntentSynonyms is the curated trigger-phrase table, in priority order.
var IntentSynonyms = []SynonymEntry{
	{"location", []string{
		"where are you", "where are you located", "where is your office",
		"office address", "address", "location", "map", "directions",
		"find you", "tiktok", "tiktok location", "tiktok video", "google map",
		"how to get there", "how do i get there", "how can i get there",
		"where can i find you", "office", "branch", "nasa saan", "saan office",
		"were are you", "wer r u", "adress", "addres", "direcsion", "locasion",
		"were is ur office", "ofice", "offce", "locashun", "were u at",
		"directions to your office", "how to go there", "paano pumunta", "saan kayo",
		"building nyo", "landmark",
	}},
	{"hours", []string{
		"hours", "opening hours", "business hours", "schedule", "open time", "what time",
		"when are you open", "what time do you open", "what time do you close",
		"open today", "closed today", "available", "operating hours",
		"wat time", "time open", "open ba kayo", "bukas ba", "sked", "scheds",
		"anong oras", "schedule nyo", "open now", "closed now", "working hours",
		"available ba", "open ba today", "weekends", "saturday",
	}},
	{"contact", []string{
		"contact", "phone", "phone number", "call you", "email", "email address",
		"how to contact you", "contact you", "reach you", "how can i contact you",
		"contact info", "contact details", "phone numbers", "mobile number",
		"fone", "number", "txt", "text", "cp number", "mobile", "cellphone",
		"reach out", "get in touch", "call", "message", "contact nyo",
		"numero nyo", "email nyo", "telepono",
		"contact information", "how to reach", "how do i call", "text you",
		"viber", "messenger", "dm", "chat",
	}},
	{"website", []string{
		"website", "web site", "web page", "webpage", "website page", "site", "link",
		"web", "online", "url", "website nyo", "link nyo", "fb page",
	}},
	{"services", []string{
		"services", "what services", "services do you offer",
		"what services does state101 travel offer", "what do you do",
		"what can you help with", "ano tulong nyo", "what kind of help",
		"serbisyo", "offer", "ano services", "wat u offer",
		"what do you provide", "ano pwede", "available services", "offerings",
	}},
	{"legit", []string{
		"legit", "legitimacy", "is your company legit", "are you legit",
		"is this real", "is this true", "real", "true", "trustworthy", "scam", "fake",
		"can i trust you", "are you registered", "official", "registered",
		"totoo ba", "legit ba", "totoo", "tru", "4real", "fr", "for real",
		"scammer", "scam ba", "fake ba", "trust", "trusted", "sketchy",
		"reliable", "legit ba talaga", "sure ba", "safe ba", "maaasahan ba",
	}},
	{"program details", []string{
		"program details", "details of your program", "details of program",
		"are trainings free", "is orientation free", "installment plans", "hidden charges",
		"consultation free", "process", "procedure", "how it works",
		"explain the process", "steps", "what happens", "timeline",
		"fees related", "process related", "visa application process",
		"how does visa application process work", "how does the process work",
		"how does your process work", "flow", "how to apply",
		"paano process", "ano steps", "ano gagawin", "paano mag start",
		"what is the process", "whats the procedure", "explain program",
	}},
	{"visa type", []string{
		"visa type", "what type of visa", "what type of visa you offer",
		"what types of visas do you process", "do you have student visa programs",
		"o visa", "o-1 visa", "o1 visa",
		"tourist visa", "work visa", "student visa", "business visa",
		"what visa", "ano visa", "types of visa", "visa options",
	}},
	{"qualifications", []string{
		"qualifications", "qualification", "what are the qualifications",
		"am i qualified", "can i apply", "eligible", "eligibility",
		"requirements to apply", "do i qualify", "qualified ba ako",
		"pwede ba ako", "pasok ba ako", "tanggap ba ako", "can i join",
	}},
	{"age limit", []string{
		"age", "age limit", "age related", "age requirement", "how old",
		"minimum age", "maximum age", "too old", "too young",
		"edad", "age limit ba", "pwede ba kahit matanda", "senior",
	}},
	{"gender", []string{
		"gender", "genders required", "male", "female", "gender requirement",
		"lalaki", "babae", "gender ba", "required gender", "boys", "girls",
		"for men", "for women", "lgbt", "lgbtq", "any gender",
	}},
	{"graduates", []string{
		"graduates", "undergraduate", "does it accept graduates only",
		"college graduate", "high school", "diploma", "degree",
		"need degree", "graduate ba", "undergrad", "walang degree",
		"no diploma", "graduate lang ba", "college lang ba",
	}},
	{"requirements", []string{
		"requirements", "documents", "needed documents", "prepare", "preparation",
		"what should i prepare", "what to bring", "what do i need",
		"documents needed", "papers needed", "initial requirements",
		"reqs", "docs", "papers", "kailangan", "ano need", "wat to bring",
		"dokumento", "requirement", "requirment", "documens",
		"ano kailangan", "ano dalhin", "ano requirements", "documents to submit",
		"what to submit", "needed papers", "initial docs",
	}},
	{"appointment", []string{
		"appointment", "book", "schedule appointment", "how can i book an appointment",
		"how can i start my application", "book appointment", "make appointment",
		"set appointment", "schedule visit", "reserve", "booking",
		"appoint", "sched", "schedule",
		"pano mag book", "paano mag appointment",
		"mag pa schedule", "mag set ng appointment", "walk in", "walkin",
		"can i visit", "pwede ba pumunta", "need appointment ba",
	}},
	{"status", []string{
		"status", "application status", "how do i know the status",
		"check status", "track application", "follow up", "update",
		"track", "tracking", "progress", "ano na", "kamusta na",
		"application progress", "where is my application", "status ng application",
		"ano nangyari", "approved na ba", "rejected ba", "pending pa ba",
	}},
	{"price", []string{
		"price", "cost", "fee", "how much", "payment", "payment options", "pay",
		"installment", "hidden charges", "consultation free", "processing fee",
		"what payment methods do you accept", "total cost", "full price",
		"magkano", "presyo", "bayad", "pric", "kost", "free ba", "libre ba",
		"how mch", "pricing", "fees", "rates", "rate", "charges",
		"magkano lahat", "ano bayad", "mahal ba", "total", "down payment",
		"dp", "monthly", "weekly", "discount", "promo", "cheap",
	}},
	{"why choose", []string{
		"why choose", "why choose state101", "why should i choose you", "why pick you",
		"what makes you different", "advantages", "benefits", "bakit kayo",
		"why you", "what makes you special", "why state101", "benefits nyo",
		"advantage", "what do you offer that others dont",
	}},
}

// TopicKeywords backs the keyword-overlap matcher: a coarser table than the
// synonym index, deliberately the loosest deterministic layer. Generic
// tokens like "where" or "find" are excluded to reduce false positives,
// with two exceptions ("how"/"much" under price, "what" under visa type)
// kept from the original tuning.
var TopicKeywords = map[string][]string{
	"location":        {"address", "map", "directions", "office", "tiktok", "location"},
	"hours":           {"hours", "open", "opening", "schedule", "time", "times"},
	"contact":         {"contact", "phone", "call", "email", "mail", "number"},
	"services":        {"services", "offer", "provide", "service"},
	"program details": {"process", "procedure", "steps", "flow", "timeline", "briefing", "assessment", "program", "details", "apply"},
	"qualifications":  {"qualifications", "qualification", "eligible", "eligibility", "experience", "training"},
	"age limit":       {"age", "years", "old", "limit"},
	"gender":          {"gender", "male", "female", "women", "men"},
	"graduates":       {"graduate", "undergraduate", "degree", "college"},
	"price":           {"price", "cost", "fee", "payment", "pay", "rates", "rate", "how", "much"},
	"requirements":    {"requirements", "documents", "docs", "papers", "needed", "prepare", "preparation", "bring"},
	"appointment":     {"appointment", "book", "schedule", "set", "meeting"},
	"status":          {"status", "track", "tracking", "update", "reference"},
	"visa type":       {"type", "b1", "b2", "what", "visa", "kind"},
}

// FusionTopicKeywords is the broader overlap table used only by the
// multi-intent fuser to surface additional topic hints.
var FusionTopicKeywords = map[string][]string{
	"location":    {"address", "map", "directions", "office", "tiktok", "location"},
	"appointment": {"appointment", "book", "schedule", "set", "meeting", "reserve"},
	"hours":       {"hours", "open", "opening", "schedule", "time", "times"},
	"contact":     {"contact", "phone", "call", "email", "mail", "number"},
	"requirements": {"requirements", "documents", "docs", "papers", "needed"},
	"price":       {"price", "cost", "fee", "payment", "pay", "rates", "rate", "much"},
	"status":      {"status", "track", "tracking", "update", "reference"},
	"visa type":   {"type", "b1", "b2", "what", "visa", "kind"},
}

// FuseWhitelist names the topics whose answers are short, factual, and
// non-contradictory when concatenated. Treated as configuration data, not
// an architectural constraint.
var FuseWhitelist = map[string]bool{
	"location":     true,
	"appointment":  true,
	"hours":        true,
	"contact":      true,
	"requirements": true,
	"price":        true,
	"status":       true,
	"visa type":    true,
}

// RelevantKeywords is the domain allow-list for the heuristic relevance gate.
var RelevantKeywords = []string{
	"visa", "travel", "passport", "appointment", "requirements",
	"canada", "canadian", "america", "american", "us", "usa",
	"application", "processing", "state101", "state 101",
	"consultation", "documentation", "embassy", "interview",
	"tourist", "business", "student", "work permit", "immigration",
	"fee", "cost", "price", "hours", "location", "contact", "website", "webpage",
	"eligibility", "qualification", "denial", "approval",
	"urgent", "status", "track", "form", "apply", "b1", "choose", "benefits", "offerings", "table", "summary", "summarize",
	"reach", "call", "email", "phone", "number", "how to", "where", "when", "get", "find",
	"legit", "legitimate", "real", "true", "trust", "trustworthy", "scam", "fake", "registered", "official",
}

// OfftopicKeywords triggers immediate rejection in the heuristic gate.
// Block-list hits win even when an allow-list term is also present; that
// precedence is preserved source behavior, pinned by a gate test.
var OfftopicKeywords = []string{
	// Programming & tech
	"calculator", "code", "program", "programming", "python", "javascript", "java",
	"html", "css", "coding", "developer", "software", "debug", "algorithm",
	"function", "variable", "loop", "array", "database", "sql", "api",

	// Food & restaurants
	"nuggets", "chicken", "burger", "pizza", "food", "restaurant", "menu",
	"jollibee", "mcdo", "mcdonald", "kfc", "fastfood", "fast food",
	"recipe", "cook", "cooking", "bake", "kitchen", "meal", "lunch", "dinner",
	"breakfast", "starbucks", "shakeys", "chowking", "greenwich",
	"potato corner", "army navy", "yellow cab", "papa johns", "pizza hut",
	"burger king", "wendys", "subway", "taco bell", "chipotle",

	// Entertainment
	"game", "gaming", "video game", "xbox", "playstation", "nintendo",
	"movie", "film", "cinema", "netflix", "series", "anime", "tv show",
	"song", "music", "spotify", "concert", "artist", "album", "singer",
	"youtube", "tiktok video", "vlog", "streamer", "twitch",

	// Academic (non-visa)
	"math", "solve", "equation", "homework", "essay", "write a story",
	"assignment", "thesis", "research", "exam", "quiz",
	"algebra", "calculus", "geometry", "physics", "chemistry", "biology",

	// Weather & nature
	"weather", "forecast", "rain", "sunny", "temperature", "climate",
	"typhoon", "storm", "earthquake", "volcano",

	// Sports & fitness
	"sports", "basketball", "football", "soccer", "volleyball", "boxing",
	"nba", "pba", "ufc", "gym", "workout", "exercise",

	// Finance & investment (non-visa)
	"stock", "crypto", "bitcoin", "ethereum", "trading", "investment",
	"forex", "shares", "dividend", "nft", "blockchain",

	// Shopping & e-commerce
	"lazada", "shopee", "amazon", "ebay", "zalora", "buy", "shopping",
	"discount", "sale", "gadget", "iphone", "samsung", "laptop",

	// Transportation (non-visa)
	"grab", "uber", "taxi", "jeep", "bus", "mrt", "lrt", "airport terminal",
	"flight schedule", "airline", "pal", "cebu pacific", "air asia",

	// Medical & health
	"doctor", "hospital", "medicine", "sick", "disease", "covid", "vaccine",
	"pharmacy", "mercury drug", "watsons", "clinic",

	// Random topics
	"zodiac", "horoscope", "astrology", "fortune", "lucky number",
	"lottery", "lotto", "raffle", "contest", "joke", "riddle",
	"ghost", "horror", "paranormal", "magic", "spell",

	// Other businesses / services
	"bank", "bdo", "bpi", "metrobank", "gcash", "paymaya", "coins",
	"load", "prepaid", "postpaid", "globe", "smart", "pldt",
	"hotel", "booking", "agoda", "airbnb", "resort", "beach",

	// Specific non-visa queries
	"minecraft", "roblox", "fortnite", "pubg", "mobile legends", "dota",
	"facebook", "instagram", "twitter", "telegram", "whatsapp",
	"google", "search", "wikipedia", "tutorial", "how to make",
	"news", "politics", "election", "court",
}

// ThirdPartyPlaceTerms are place/brand names that, absent a first-person
// office reference, mean the user is asking directions to some unrelated
// business.
var ThirdPartyPlaceTerms = []string{
	"airport", "naia", "terminal", "runway", "jollibee", "mcdo", "mcdonald", "kfc",
	"burger king", "subway", "7-eleven", "7 eleven", "mall", "sm", "robinsons", "megamall", "mega mall",
	"market", "supermarket", "groceries", "pharmacy", "drugstore", "hospital", "clinic", "hotel", "resort",
	"bank", "atm", "police station", "station", "university", "school", "church", "park",
}

// FirstPersonMarkers indicate the user means our office rather than a
// third-party place.
var FirstPersonMarkers = []string{
	"state101", "state 101", "your office", "your location", "your address", "office address",
	"where are you", "where is your office", "visit your office", "go to your office",
}

// Greetings allowed through the gate when the utterance is short.
var Greetings = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

// Canned user-facing messages. The assistant never surfaces a raw error;
// every failure path resolves to one of these.
const (
	GreetingMessage = "👋 Hi! Welcome to State101 Travel. How can I help you with your US/Canada visa inquiry today?"

	RejectionMessage = "😊 I can help with State101 Travel's US/Canada visa assistance inquiries only. " +
		"Please ask about visa requirements, appointments, contact info, or our location."

	StrictModeMessage = "📘 I can share our official information only. Please ask about requirements, location, hours, or services. " +
		"Visit https://state101-travel-website.vercel.app/services to apply."

	FormHintMessage = "📝 Please visit our website to apply: https://state101-travel-website.vercel.app/services\n\n" +
		"You can find the application form and all requirements there."

	CodeRefusalMessage = "😊 I'm sorry, but I can only assist with queries related to **State101 Travel** and our visa services.\n\n" +
		"**How can I help you with your visa application today?**"

	BusyMessagePrefix = "⚠️ Our system is experiencing high traffic. Please try again or contact us directly:\n\n"
)

// SystemPrompt is the fixed role/behavior preamble for the generation
// fallback.
const SystemPrompt = `You are the State101 Chatbot, the official AI assistant for State101Travel specializing in US/Canada visa assistance. Your role is to:

1. **Information Provider**:
   - Clearly explain Canadian Visa and American visa processes
   - Provide requirements and services information when asked
   - Share business hours (Mon-Sat 9AM-5PM), location, and contact details

2. **Application & Requirements**:
   - Direct users to the website for the application form and requirements: https://state101-travel-website.vercel.app/services

3. **Response Rules**:
   - For factual queries (location, contact, hours, services, legitimacy, qualifications, requirements, appointment, status, price), use ONLY the provided FACTS
   - For fees-related or process-related questions, reply exactly: "All the details about our program will be discussed during the initial briefing and assessment at our office"
   - For complex queries, defer to the official contacts in FACTS

4. **Style Guide**:
   - Use bullet points for requirements
   - Include emojis for readability (🛂 ✈️ 📝)
   - Never speculate - defer to official contacts when uncertain
   - Always emphasize: "We recommend an appointment before walking in."

5. **Strict Answer Policy**:
   - Never invent or rename branches, locations, phone numbers, or emails. Use exactly the strings provided in FACTS.
   - If requested information is not present in FACTS, direct the user to the official phones/email or the website.

**CRITICAL RESTRICTION**: You MUST ONLY answer questions related to State101 Travel and visa services. Never provide code, calculations, or information outside of visa/travel services.`

// FactsInstructions constrains the fallback model to the packed facts.
const FactsInstructions = `You must answer ONLY using the FACTS provided below. If a requested detail isn't explicitly present, do your best to:
1) Use the closest relevant item from FACTS (e.g., use program_details for process questions, price_note for fees, contact_block for contact info).
2) If it still cannot be answered from FACTS, respond with the official contact_block and form_hint. Do NOT say "not available".
Never invent, rename, or alter addresses, phone numbers, emails, hours, or services beyond what appears in FACTS.`
