package vtm

// Predator type categories, matching the groupings on the predator type step
const (
	CategoryViolent          = "violent"
	CategorySociable         = "sociable"
	CategoryStealth          = "stealth"
	CategoryExcludingMortals = "excluding_mortals"
)

// Categories lists predator type categories in display order
var Categories = []string{
	CategoryViolent,
	CategorySociable,
	CategoryStealth,
	CategoryExcludingMortals,
}

// Selection kinds
const (
	KindMerit = "merit"
	KindFlaw  = "flaw"
)

// Clan constants
const (
	ClanBanuHaqim = "Banu Haqim"
	ClanBrujah    = "Brujah"
	ClanGangrel   = "Gangrel"
	ClanHecata    = "Hecata"
	ClanLasombra  = "Lasombra"
	ClanMalkavian = "Malkavian"
	ClanMinistry  = "Ministry"
	ClanNosferatu = "Nosferatu"
	ClanRavnos    = "Ravnos"
	ClanSalubri   = "Salubri"
	ClanToreador  = "Toreador"
	ClanTremere   = "Tremere"
	ClanTzimisce  = "Tzimisce"
	ClanVentrue   = "Ventrue"
	ClanCaitiff   = "Caitiff"
	ClanThinBlood = "Thin-blood"
)

// Clans lists every playable clan
var Clans = []string{
	ClanBanuHaqim, ClanBrujah, ClanGangrel, ClanHecata, ClanLasombra,
	ClanMalkavian, ClanMinistry, ClanNosferatu, ClanRavnos, ClanSalubri,
	ClanToreador, ClanTremere, ClanTzimisce, ClanVentrue, ClanCaitiff,
	ClanThinBlood,
}

// Discipline constants
const (
	DisciplineAnimalism        = "animalism"
	DisciplineAuspex           = "auspex"
	DisciplineBloodSorcery     = "blood sorcery"
	DisciplineCelerity         = "celerity"
	DisciplineDominate         = "dominate"
	DisciplineFortitude        = "fortitude"
	DisciplineObfuscate        = "obfuscate"
	DisciplineOblivion         = "oblivion"
	DisciplinePotence          = "potence"
	DisciplinePresence         = "presence"
	DisciplineProtean          = "protean"
	DisciplineThinBloodAlchemy = "thin-blood alchemy"
)

// Skill constants
const (
	SkillAthletics     = "athletics"
	SkillBrawl         = "brawl"
	SkillCraft         = "craft"
	SkillDrive         = "drive"
	SkillFirearms      = "firearms"
	SkillMelee         = "melee"
	SkillLarceny       = "larceny"
	SkillStealth       = "stealth"
	SkillSurvival      = "survival"
	SkillAnimalKen     = "animal ken"
	SkillEtiquette     = "etiquette"
	SkillInsight       = "insight"
	SkillIntimidation  = "intimidation"
	SkillLeadership    = "leadership"
	SkillPerformance   = "performance"
	SkillPersuasion    = "persuasion"
	SkillStreetwise    = "streetwise"
	SkillSubterfuge    = "subterfuge"
	SkillAcademics     = "academics"
	SkillAwareness     = "awareness"
	SkillFinance       = "finance"
	SkillInvestigation = "investigation"
	SkillMedicine      = "medicine"
	SkillOccult        = "occult"
	SkillPolitics      = "politics"
	SkillScience       = "science"
	SkillTechnology    = "technology"
)

// Skills lists all 27 skills: physical, social, then mental
var Skills = []string{
	SkillAthletics, SkillBrawl, SkillCraft, SkillDrive, SkillFirearms,
	SkillMelee, SkillLarceny, SkillStealth, SkillSurvival,

	SkillAnimalKen, SkillEtiquette, SkillInsight, SkillIntimidation,
	SkillLeadership, SkillPerformance, SkillPersuasion, SkillStreetwise,
	SkillSubterfuge,

	SkillAcademics, SkillAwareness, SkillFinance, SkillInvestigation,
	SkillMedicine, SkillOccult, SkillPolitics, SkillScience, SkillTechnology,
}

// MaxSkillLevel is the highest rating a skill may hold
const MaxSkillLevel = 5

// IsSkill reports whether name is one of the 27 skills
func IsSkill(name string) bool {
	return contains(Skills, name)
}

// IsClan reports whether name is a playable clan
func IsClan(name string) bool {
	return contains(Clans, name)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Disciplines lists every discipline a predator type may offer
var Disciplines = []string{
	DisciplineAnimalism, DisciplineAuspex, DisciplineBloodSorcery,
	DisciplineCelerity, DisciplineDominate, DisciplineFortitude,
	DisciplineObfuscate, DisciplineOblivion, DisciplinePotence,
	DisciplinePresence, DisciplineProtean, DisciplineThinBloodAlchemy,
}

// IsDiscipline reports whether name is a known discipline
func IsDiscipline(name string) bool {
	return contains(Disciplines, name)
}
