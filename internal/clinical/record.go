package clinical

import "fmt"

// EncounterRecord is the frozen input snapshot for one resource build: the
// clinical encounter data plus the identifiers every builder reads from. It
// is constructed once per export, never mutated by a builder, and discarded
// after the build.
type EncounterRecord struct {
	EncounterID   string        `json:"encounterId,omitempty"`
	EncounterDate string        `json:"encounterDate,omitempty"`
	EncounterType EncounterType `json:"encounterType,omitempty"`
	PatientID     string        `json:"patientId"`
	ProviderID    string        `json:"providerId"`

	History        History         `json:"history"`
	Examination    *Examination    `json:"examination,omitempty"`
	Investigations *Investigations `json:"investigations,omitempty"`
	Medications    *Medications    `json:"medications,omitempty"`
	Assessment     string          `json:"assessment,omitempty"`
	Plan           string          `json:"plan,omitempty"`
}

// Validate checks the identifiers builders embed into reference strings.
// Builders themselves do not guard; callers must reject a record that fails
// validation before any builder runs.
func (r *EncounterRecord) Validate() error {
	if r.PatientID == "" {
		return fmt.Errorf("patientId is required")
	}
	if r.ProviderID == "" {
		return fmt.Errorf("providerId is required")
	}
	return nil
}

// EncounterType distinguishes the care setting.
type EncounterType string

const (
	EncounterOutpatient EncounterType = "OUTPATIENT"
	EncounterInpatient  EncounterType = "INPATIENT"
)

// -- History --

type History struct {
	ChiefComplaintText string                   `json:"chiefComplaintText,omitempty"`
	ChiefComplaints    []ChiefComplaintSymptom  `json:"chiefComplaints,omitempty"`
	PresentIllness     *PresentIllness          `json:"presentIllness,omitempty"`
	PastMedical        []PastMedicalEntry       `json:"pastMedical,omitempty"`
	MedicationHistory  []MedicationHistoryEntry `json:"medicationHistory,omitempty"`
	SurgicalHistory    []SurgicalEntry          `json:"surgicalHistory,omitempty"`
	OBGYN              *OBGYNHistory            `json:"obgyn,omitempty"`
	Immunizations      []ImmunizationEntry      `json:"immunizations,omitempty"`
	FamilyHistory      []FamilyHistoryEntry     `json:"familyHistory,omitempty"`
	SocialHistory      *SocialHistory           `json:"socialHistory,omitempty"`
	SystemEnquiry      map[string]SystemEntry   `json:"systemEnquiry,omitempty"`
}

type ChiefComplaintSymptom struct {
	ID         string `json:"id"`
	SNOMEDCode string `json:"snomedCode,omitempty"`
	Label      string `json:"label,omitempty"`
}

type PresentIllness struct {
	Onset     string `json:"onset,omitempty"`
	Character string `json:"character,omitempty"`
	Quality   string `json:"quality,omitempty"`
	Radiation string `json:"radiation,omitempty"`
	Severity  int    `json:"severity,omitempty"` // 1-10, 0 means not recorded
	Timing    string `json:"timing,omitempty"`
	Context   string `json:"context,omitempty"`

	// SymptomFeatures is keyed by chief-complaint symptom id.
	SymptomFeatures map[string]SymptomFeatures `json:"symptomFeatures,omitempty"`
}

type SymptomFeatures struct {
	DurationValue      float64         `json:"durationValue,omitempty"`
	DurationUnit       string          `json:"durationUnit,omitempty"`
	Severity           SymptomSeverity `json:"severity,omitempty"`
	Character          []string        `json:"character,omitempty"`
	AggravatingFactors []string        `json:"aggravatingFactors,omitempty"`
	RelievingFactors   []string        `json:"relievingFactors,omitempty"`
	Notes              string          `json:"notes,omitempty"`
}

type SymptomSeverity string

const (
	SeverityMild     SymptomSeverity = "mild"
	SeverityModerate SymptomSeverity = "moderate"
	SeveritySevere   SymptomSeverity = "severe"
)

type PastMedicalEntry struct {
	Condition     string          `json:"condition,omitempty"`
	SNOMEDCode    string          `json:"snomedCode,omitempty"`
	ICD10Code     string          `json:"icd10Code,omitempty"`
	YearDiagnosed string          `json:"yearDiagnosed,omitempty"`
	Status        ConditionStatus `json:"status,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// ConditionStatus is the past-medical-history status vocabulary.
type ConditionStatus string

const (
	ConditionStatusActive    ConditionStatus = "active"
	ConditionStatusRemission ConditionStatus = "remission"
	ConditionStatusResolved  ConditionStatus = "resolved"
)

type MedicationHistoryEntry struct {
	Name       string           `json:"name,omitempty"`
	RxNormCode string           `json:"rxnormCode,omitempty"`
	Dosage     string           `json:"dosage,omitempty"`
	Frequency  string           `json:"frequency,omitempty"`
	Route      string           `json:"route,omitempty"`
	Indication string           `json:"indication,omitempty"`
	StartDate  string           `json:"startDate,omitempty"`
	EndDate    string           `json:"endDate,omitempty"`
	Status     MedicationStatus `json:"status,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

type MedicationStatus string

const (
	MedicationCurrent MedicationStatus = "current"
	MedicationStopped MedicationStatus = "stopped"
)

type SurgicalEntry struct {
	Procedure  string `json:"procedure,omitempty"`
	SNOMEDCode string `json:"snomedCode,omitempty"`
	Date       string `json:"date,omitempty"`
	BodySite   string `json:"bodySite,omitempty"`
	Outcome    string `json:"outcome,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type OBGYNHistory struct {
	Obstetric   *ObstetricHistory   `json:"obstetric,omitempty"`
	Gynecologic *GynecologicHistory `json:"gynecologic,omitempty"`
}

type ObstetricHistory struct {
	Gravida             int    `json:"gravida,omitempty"`
	Para                int    `json:"para,omitempty"`
	Abortions           int    `json:"abortions,omitempty"`
	LivingChildren      int    `json:"livingChildren,omitempty"`
	CurrentlyPregnant   bool   `json:"currentlyPregnant,omitempty"`
	LMP                 string `json:"lmp,omitempty"`
	EDD                 string `json:"edd,omitempty"`
	ContraceptionMethod string `json:"contraceptionMethod,omitempty"`
	ContraceptionCode   string `json:"contraceptionCode,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

type GynecologicHistory struct {
	MenarcheAge   int      `json:"menarcheAge,omitempty"`
	MenopauseAge  int      `json:"menopauseAge,omitempty"`
	CycleLength   int      `json:"cycleLength,omitempty"`
	CycleRegular  bool     `json:"cycleRegular,omitempty"`
	LastPapDate   string   `json:"lastPapDate,omitempty"`
	LastPapResult string   `json:"lastPapResult,omitempty"`
	Conditions    []string `json:"conditions,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type ImmunizationEntry struct {
	VaccineName  string             `json:"vaccineName,omitempty"`
	CVXCode      string             `json:"cvxCode,omitempty"`
	SNOMEDCode   string             `json:"snomedCode,omitempty"`
	Date         string             `json:"date,omitempty"`
	Status       ImmunizationStatus `json:"status,omitempty"`
	LotNumber    string             `json:"lotNumber,omitempty"`
	Manufacturer string             `json:"manufacturer,omitempty"`
	Site         string             `json:"site,omitempty"`
	Route        string             `json:"route,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

type ImmunizationStatus string

const (
	ImmunizationCompleted ImmunizationStatus = "completed"
	ImmunizationPartial   ImmunizationStatus = "partial"
	ImmunizationDue       ImmunizationStatus = "due"
	ImmunizationDeclined  ImmunizationStatus = "declined"
)

type FamilyHistoryEntry struct {
	Relation  string `json:"relation,omitempty"`
	Condition string `json:"condition,omitempty"`
	Age       string `json:"age,omitempty"`
}

type SocialHistory struct {
	Occupation       string `json:"occupation,omitempty"`
	TobaccoUse       string `json:"tobaccoUse,omitempty"`
	AlcoholUse       string `json:"alcoholUse,omitempty"`
	DrugUse          string `json:"drugUse,omitempty"`
	LivingConditions string `json:"livingConditions,omitempty"`
}

// IsEmpty reports whether no social-history field is set.
func (s *SocialHistory) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Occupation == "" && s.TobaccoUse == "" && s.AlcoholUse == "" &&
		s.DrugUse == "" && s.LivingConditions == ""
}

type SystemEntry struct {
	Normal           bool              `json:"normal"`
	PositiveSymptoms []PositiveSymptom `json:"positiveSymptoms,omitempty"`
	SummaryText      string            `json:"summaryText,omitempty"`
}

type PositiveSymptom struct {
	SNOMEDCode string `json:"snomedCode,omitempty"`
	Label      string `json:"label,omitempty"`
}

// -- Examination --

type Examination struct {
	Vitals          VitalSigns          `json:"vitals"`
	General         GeneralExam         `json:"general"`
	Cardiovascular  CardiovascularExam  `json:"cardiovascular"`
	Respiratory     RespiratoryExam     `json:"respiratory"`
	Abdominal       AbdominalExam       `json:"abdominal"`
	Neurological    NeurologicalExam    `json:"neurological"`
	Musculoskeletal MusculoskeletalExam `json:"musculoskeletal"`
}

// VitalSigns holds the measured vitals. A zero numeric value means the vital
// was not recorded; blood pressure is a free string ("120/80").
type VitalSigns struct {
	BloodPressure   string  `json:"bloodPressure,omitempty"`
	HeartRate       float64 `json:"heartRate,omitempty"`
	RespiratoryRate float64 `json:"respiratoryRate,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	SpO2            float64 `json:"spo2,omitempty"`
	BMI             float64 `json:"bmi,omitempty"`
}

type GeneralExam struct {
	Appearance      string `json:"appearance,omitempty"`
	Pallor          string `json:"pallor,omitempty"`
	Icterus         string `json:"icterus,omitempty"`
	Cyanosis        string `json:"cyanosis,omitempty"`
	Edema           string `json:"edema,omitempty"`
	Lymphadenopathy string `json:"lymphadenopathy,omitempty"`
}

type CardiovascularExam struct {
	HeartSounds           string `json:"heartSounds,omitempty"`
	Murmurs               string `json:"murmurs,omitempty"`
	PeripheralPulses      string `json:"peripheralPulses,omitempty"`
	JugularVenousPressure string `json:"jugularVenousPressure,omitempty"`
}

type RespiratoryExam struct {
	BreathSounds   string `json:"breathSounds,omitempty"`
	AddedSounds    string `json:"addedSounds,omitempty"`
	ChestExpansion string `json:"chestExpansion,omitempty"`
	Percussion     string `json:"percussion,omitempty"`
}

type AbdominalExam struct {
	Inspection   string `json:"inspection,omitempty"`
	Palpation    string `json:"palpation,omitempty"`
	Organomegaly string `json:"organomegaly,omitempty"`
	BowelSounds  string `json:"bowelSounds,omitempty"`
}

type NeurologicalExam struct {
	MentalStatus  string `json:"mentalStatus,omitempty"`
	CranialNerves string `json:"cranialNerves,omitempty"`
	MotorSystem   string `json:"motorSystem,omitempty"`
	SensorySystem string `json:"sensorySystem,omitempty"`
	Reflexes      string `json:"reflexes,omitempty"`
	Gait          string `json:"gait,omitempty"`
}

type MusculoskeletalExam struct {
	Joints        string `json:"joints,omitempty"`
	RangeOfMotion string `json:"rangeOfMotion,omitempty"`
	Deformities   string `json:"deformities,omitempty"`
	Tenderness    string `json:"tenderness,omitempty"`
}

// -- Investigations --

type Investigations struct {
	OrderedTests []OrderedTest `json:"orderedTests,omitempty"`
	Results      []TestResult  `json:"results,omitempty"`
}

type OrderedTest struct {
	TestName string      `json:"testName,omitempty"`
	Code     string      `json:"code,omitempty"`
	Urgency  TestUrgency `json:"urgency,omitempty"`
	Notes    string      `json:"notes,omitempty"`
}

type TestUrgency string

const (
	UrgencyRoutine TestUrgency = "routine"
	UrgencyUrgent  TestUrgency = "urgent"
	UrgencyStat    TestUrgency = "stat"
)

type TestResult struct {
	TestName       string       `json:"testName,omitempty"`
	Value          string       `json:"value,omitempty"`
	Unit           string       `json:"unit,omitempty"`
	ReferenceRange string       `json:"referenceRange,omitempty"`
	Status         ResultStatus `json:"status,omitempty"`
}

type ResultStatus string

const (
	ResultPending   ResultStatus = "pending"
	ResultCompleted ResultStatus = "completed"
	ResultAbnormal  ResultStatus = "abnormal"
)

// -- Medications --

type Medications struct {
	Prescriptions []Prescription `json:"prescriptions,omitempty"`
}

type Prescription struct {
	MedicationName string `json:"medicationName,omitempty"`
	Dosage         string `json:"dosage,omitempty"`
	Route          string `json:"route,omitempty"`
	Frequency      string `json:"frequency,omitempty"`
	Duration       string `json:"duration,omitempty"`
	Indication     string `json:"indication,omitempty"`
	Notes          string `json:"notes,omitempty"`
}
