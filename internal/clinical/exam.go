package clinical

import (
	"fmt"

	"github.com/clindoc/clindoc/internal/platform/fhir"
)

// LOINC codes for the vital-sign observations.
const (
	loincBloodPressure   = "85354-9"
	loincHeartRate       = "8867-4"
	loincRespiratoryRate = "9279-1"
	loincTemperature     = "8310-5"
	loincSpO2            = "59408-5"
	loincBMI             = "39156-5"
)

// BuildExaminationObservations emits vital-sign observations for vitals that
// were recorded (zero is the "not recorded" sentinel for numeric vitals, an
// empty string for blood pressure) followed by one text observation per
// non-empty finding in each structured exam section.
func BuildExaminationObservations(rec *EncounterRecord) []fhir.Observation {
	exam := rec.Examination
	if exam == nil {
		return nil
	}
	out := buildVitalObservations(rec, exam.Vitals)
	for _, section := range examSections(exam) {
		for _, f := range section.findings {
			if f.value == "" {
				continue
			}
			out = append(out, fhir.Observation{
				ResourceType: "Observation",
				Status:       "final",
				Category:     []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategoryExam)},
				Code:         fhir.TextConcept(fmt.Sprintf("%s: %s", section.name, humanizeFieldName(f.field))),
				Subject:      fhir.PatientRef(rec.PatientID),
				Encounter:    encounterRef(rec),
				ValueString:  f.value,
			})
		}
	}
	return out
}

func buildVitalObservations(rec *EncounterRecord, vitals VitalSigns) []fhir.Observation {
	var out []fhir.Observation
	if vitals.BloodPressure != "" {
		obs := vitalObservation(rec, loincBloodPressure, "Blood pressure")
		obs.ValueString = vitals.BloodPressure
		out = append(out, obs)
	}
	numeric := []struct {
		code    string
		display string
		value   float64
		unit    string
	}{
		{loincHeartRate, "Heart rate", vitals.HeartRate, "/min"},
		{loincRespiratoryRate, "Respiratory rate", vitals.RespiratoryRate, "/min"},
		{loincTemperature, "Body temperature", vitals.Temperature, "Cel"},
		{loincSpO2, "Oxygen saturation", vitals.SpO2, "%"},
		{loincBMI, "Body mass index", vitals.BMI, "kg/m2"},
	}
	for _, v := range numeric {
		if v.value <= 0 {
			continue
		}
		obs := vitalObservation(rec, v.code, v.display)
		obs.ValueQuantity = &fhir.Quantity{Value: v.value, Unit: v.unit}
		out = append(out, obs)
	}
	return out
}

func vitalObservation(rec *EncounterRecord, code, display string) fhir.Observation {
	return fhir.Observation{
		ResourceType: "Observation",
		Status:       "final",
		Category:     []fhir.CodeableConcept{fhir.ObservationCategory(fhir.ObsCategoryVitalSigns)},
		Code:         fhir.CodedConcept(fhir.SystemLOINC, code, display),
		Subject:      fhir.PatientRef(rec.PatientID),
		Encounter:    encounterRef(rec),
	}
}

type examFinding struct {
	field string
	value string
}

type examSection struct {
	name     string
	findings []examFinding
}

// examSections flattens the structured exam sections into ordered
// (fieldName, value) pairs. Field names stay camelCase here; humanization
// happens at observation-build time.
func examSections(exam *Examination) []examSection {
	return []examSection{
		{"General examination", []examFinding{
			{"appearance", exam.General.Appearance},
			{"pallor", exam.General.Pallor},
			{"icterus", exam.General.Icterus},
			{"cyanosis", exam.General.Cyanosis},
			{"edema", exam.General.Edema},
			{"lymphadenopathy", exam.General.Lymphadenopathy},
		}},
		{"Cardiovascular examination", []examFinding{
			{"heartSounds", exam.Cardiovascular.HeartSounds},
			{"murmurs", exam.Cardiovascular.Murmurs},
			{"peripheralPulses", exam.Cardiovascular.PeripheralPulses},
			{"jugularVenousPressure", exam.Cardiovascular.JugularVenousPressure},
		}},
		{"Respiratory examination", []examFinding{
			{"breathSounds", exam.Respiratory.BreathSounds},
			{"addedSounds", exam.Respiratory.AddedSounds},
			{"chestExpansion", exam.Respiratory.ChestExpansion},
			{"percussion", exam.Respiratory.Percussion},
		}},
		{"Abdominal examination", []examFinding{
			{"inspection", exam.Abdominal.Inspection},
			{"palpation", exam.Abdominal.Palpation},
			{"organomegaly", exam.Abdominal.Organomegaly},
			{"bowelSounds", exam.Abdominal.BowelSounds},
		}},
		{"Neurological examination", []examFinding{
			{"mentalStatus", exam.Neurological.MentalStatus},
			{"cranialNerves", exam.Neurological.CranialNerves},
			{"motorSystem", exam.Neurological.MotorSystem},
			{"sensorySystem", exam.Neurological.SensorySystem},
			{"reflexes", exam.Neurological.Reflexes},
			{"gait", exam.Neurological.Gait},
		}},
		{"Musculoskeletal examination", []examFinding{
			{"joints", exam.Musculoskeletal.Joints},
			{"rangeOfMotion", exam.Musculoskeletal.RangeOfMotion},
			{"deformities", exam.Musculoskeletal.Deformities},
			{"tenderness", exam.Musculoskeletal.Tenderness},
		}},
	}
}
