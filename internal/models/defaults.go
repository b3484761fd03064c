package models

import (
	"fmt"
	"strings"
)

// DefaultRooms returns the seed dataset for the rooms collection: the five
// teaching rooms of the Didática 1 building.
func DefaultRooms() []Room {
	return []Room{
		{ID: "001", Name: "DID1 - 001", Building: "Didática 1", Capacity: 40, IsAvailable: true},
		{ID: "002", Name: "DID1 - 002", Building: "Didática 1", Capacity: 35, IsAvailable: true},
		{ID: "003", Name: "DID1 - 003", Building: "Didática 1", Capacity: 50, IsAvailable: true},
		{ID: "004", Name: "DID1 - 004", Building: "Didática 1", Capacity: 30, IsAvailable: true},
		{ID: "005", Name: "DID1 - 005", Building: "Didática 1", Capacity: 45, IsAvailable: true},
	}
}

// courseSeats holds the enrolled headcount per course code used to seed the
// occupied-seats field. Every value fits the capacity of the room the course
// is scheduled in.
var courseSeats = map[string]int{
	"FIS0101": 35, "FIS0102": 22, "QUI0201": 28, "ENG0301": 32, "ENG0302": 18,
	"MAT0102": 38, "EST0101": 30, "PRG0201": 25,
	"MAT0153": 30, "CIC0097": 33, "CIC0004": 28, "ADM0201": 20, "CIC0182": 26,
	"MAT0154": 31, "CIC0003": 24,
	"BIO0101": 45, "BIO0102": 38, "MED0101": 48, "QUI0301": 36, "MED0102": 42,
	"DIR0101": 28, "DIR0102": 25, "ECO0101": 22, "ECO0102": 26, "ADM0101": 20,
	"DIR0103": 15,
	"PSI0101": 40, "SOC0101": 35, "FIL0101": 30, "HIS0101": 38, "SOC0102": 28,
	"FIL0102": 20, "PSI0102": 33,
}

func seedEntry(roomID string, day Weekday, start, end, code, name string) ScheduleEntry {
	return ScheduleEntry{
		ID:                fmt.Sprintf("%s-%s-%s", roomID, day, strings.ReplaceAll(start, ":", "")),
		RoomID:            roomID,
		Day:               day,
		StartTime:         start,
		EndTime:           end,
		CourseCode:        code,
		CourseName:        name,
		UsageType:         UsageClassSession,
		OccupiedSeats:     courseSeats[code],
		CanBeUsedForStudy: code != "DIR0103",
	}
}

// DefaultEntries returns the seed dataset for the schedule-entries
// collection: the weekly timetable of the five rooms.
func DefaultEntries() []ScheduleEntry {
	return []ScheduleEntry{
		// Room 001
		seedEntry("001", Monday, "07:30", "09:10", "FIS0101", "Física I"),
		seedEntry("001", Monday, "09:20", "11:00", "FIS0101", "Física I"),
		seedEntry("001", Monday, "14:00", "15:40", "QUI0201", "Química Geral"),
		seedEntry("001", Monday, "19:30", "21:10", "ENG0301", "Introdução à Engenharia"),
		seedEntry("001", Tuesday, "07:30", "09:10", "MAT0102", "Cálculo II"),
		seedEntry("001", Tuesday, "11:10", "12:50", "EST0101", "Estatística Básica"),
		seedEntry("001", Tuesday, "15:50", "17:30", "PRG0201", "Programação I"),
		seedEntry("001", Wednesday, "09:20", "11:00", "FIS0102", "Física II"),
		seedEntry("001", Wednesday, "14:00", "15:40", "QUI0201", "Química Geral"),
		seedEntry("001", Wednesday, "17:40", "19:20", "ENG0302", "Desenho Técnico"),
		seedEntry("001", Thursday, "07:30", "09:10", "MAT0102", "Cálculo II"),
		seedEntry("001", Thursday, "09:20", "11:00", "FIS0101", "Física I"),
		seedEntry("001", Thursday, "19:30", "21:10", "ENG0301", "Introdução à Engenharia"),
		seedEntry("001", Friday, "11:10", "12:50", "EST0101", "Estatística Básica"),
		seedEntry("001", Friday, "14:00", "15:40", "PRG0201", "Programação I"),

		// Room 002
		seedEntry("002", Monday, "07:30", "09:10", "MAT0153", "Álgebra Linear"),
		seedEntry("002", Monday, "09:20", "11:00", "MAT0153", "Álgebra Linear"),
		seedEntry("002", Monday, "11:10", "12:50", "CIC0097", "Banco de Dados"),
		seedEntry("002", Monday, "14:00", "15:40", "CIC0097", "Banco de Dados"),
		seedEntry("002", Monday, "15:50", "17:30", "CIC0004", "Estrutura de Dados"),
		seedEntry("002", Monday, "19:30", "21:10", "ADM0201", "Gestão de Projetos"),
		seedEntry("002", Tuesday, "07:30", "09:10", "CIC0182", "Redes de Computadores"),
		seedEntry("002", Tuesday, "09:20", "11:00", "CIC0182", "Redes de Computadores"),
		seedEntry("002", Tuesday, "14:00", "15:40", "MAT0154", "Cálculo III"),
		seedEntry("002", Tuesday, "17:40", "19:20", "CIC0003", "Algoritmos"),
		seedEntry("002", Wednesday, "07:30", "09:10", "MAT0153", "Álgebra Linear"),
		seedEntry("002", Wednesday, "11:10", "12:50", "CIC0097", "Banco de Dados"),
		seedEntry("002", Wednesday, "15:50", "17:30", "CIC0004", "Estrutura de Dados"),
		seedEntry("002", Wednesday, "19:30", "21:10", "ADM0201", "Gestão de Projetos"),
		seedEntry("002", Thursday, "09:20", "11:00", "CIC0182", "Redes de Computadores"),
		seedEntry("002", Thursday, "14:00", "15:40", "MAT0154", "Cálculo III"),
		seedEntry("002", Thursday, "17:40", "19:20", "CIC0003", "Algoritmos"),
		seedEntry("002", Friday, "07:30", "09:10", "CIC0097", "Banco de Dados"),
		seedEntry("002", Friday, "11:10", "12:50", "CIC0004", "Estrutura de Dados"),
		seedEntry("002", Friday, "14:00", "15:40", "MAT0154", "Cálculo III"),

		// Room 003
		seedEntry("003", Monday, "09:20", "11:00", "BIO0101", "Biologia Celular"),
		seedEntry("003", Monday, "14:00", "15:40", "BIO0102", "Genética"),
		seedEntry("003", Monday, "17:40", "19:20", "MED0101", "Anatomia I"),
		seedEntry("003", Tuesday, "07:30", "09:10", "QUI0301", "Química Orgânica"),
		seedEntry("003", Tuesday, "11:10", "12:50", "BIO0101", "Biologia Celular"),
		seedEntry("003", Tuesday, "15:50", "17:30", "BIO0102", "Genética"),
		seedEntry("003", Tuesday, "19:30", "21:10", "MED0102", "Fisiologia"),
		seedEntry("003", Wednesday, "07:30", "09:10", "QUI0301", "Química Orgânica"),
		seedEntry("003", Wednesday, "09:20", "11:00", "BIO0101", "Biologia Celular"),
		seedEntry("003", Wednesday, "17:40", "19:20", "MED0101", "Anatomia I"),
		seedEntry("003", Thursday, "11:10", "12:50", "BIO0102", "Genética"),
		seedEntry("003", Thursday, "14:00", "15:40", "QUI0301", "Química Orgânica"),
		seedEntry("003", Thursday, "19:30", "21:10", "MED0102", "Fisiologia"),
		seedEntry("003", Friday, "09:20", "11:00", "BIO0101", "Biologia Celular"),
		seedEntry("003", Friday, "15:50", "17:30", "MED0101", "Anatomia I"),

		// Room 004
		seedEntry("004", Monday, "07:30", "09:10", "DIR0101", "Direito Civil I"),
		seedEntry("004", Monday, "11:10", "12:50", "DIR0102", "Direito Penal"),
		seedEntry("004", Monday, "15:50", "17:30", "ECO0101", "Microeconomia"),
		seedEntry("004", Tuesday, "09:20", "11:00", "DIR0101", "Direito Civil I"),
		seedEntry("004", Tuesday, "14:00", "15:40", "ECO0102", "Macroeconomia"),
		seedEntry("004", Tuesday, "17:40", "19:20", "ADM0101", "Administração I"),
		seedEntry("004", Tuesday, "21:15", "22:15", "DIR0103", "Seminário Jurídico"),
		seedEntry("004", Wednesday, "07:30", "09:10", "DIR0101", "Direito Civil I"),
		seedEntry("004", Wednesday, "11:10", "12:50", "DIR0102", "Direito Penal"),
		seedEntry("004", Wednesday, "14:00", "15:40", "ECO0101", "Microeconomia"),
		seedEntry("004", Wednesday, "19:30", "21:10", "ADM0101", "Administração I"),
		seedEntry("004", Thursday, "09:20", "11:00", "ECO0102", "Macroeconomia"),
		seedEntry("004", Thursday, "15:50", "17:30", "DIR0102", "Direito Penal"),
		seedEntry("004", Friday, "07:30", "09:10", "ECO0101", "Microeconomia"),
		seedEntry("004", Friday, "11:10", "12:50", "ADM0101", "Administração I"),
		seedEntry("004", Friday, "17:40", "19:20", "DIR0103", "Seminário Jurídico"),

		// Room 005
		seedEntry("005", Monday, "09:20", "11:00", "PSI0101", "Psicologia Geral"),
		seedEntry("005", Monday, "14:00", "15:40", "SOC0101", "Sociologia I"),
		seedEntry("005", Monday, "19:30", "21:10", "FIL0101", "Filosofia I"),
		seedEntry("005", Tuesday, "07:30", "09:10", "HIS0101", "História Contemporânea"),
		seedEntry("005", Tuesday, "11:10", "12:50", "PSI0101", "Psicologia Geral"),
		seedEntry("005", Tuesday, "15:50", "17:30", "SOC0102", "Antropologia"),
		seedEntry("005", Wednesday, "09:20", "11:00", "PSI0101", "Psicologia Geral"),
		seedEntry("005", Wednesday, "14:00", "15:40", "SOC0101", "Sociologia I"),
		seedEntry("005", Wednesday, "17:40", "19:20", "HIS0101", "História Contemporânea"),
		seedEntry("005", Wednesday, "21:15", "22:15", "FIL0102", "Ética"),
		seedEntry("005", Thursday, "07:30", "09:10", "HIS0101", "História Contemporânea"),
		seedEntry("005", Thursday, "11:10", "12:50", "SOC0102", "Antropologia"),
		seedEntry("005", Thursday, "19:30", "21:10", "FIL0101", "Filosofia I"),
		seedEntry("005", Friday, "09:20", "11:00", "PSI0102", "Psicologia Social"),
		seedEntry("005", Friday, "14:00", "15:40", "SOC0101", "Sociologia I"),
	}
}
