package school

// Static pools the generator draws from. Order matters: ids and teacher
// assignments are derived from positions in these slices.

var Departments = []string{
	"Matemáticas", "Comunicación", "Ciencia y Tecnología", "Historia",
	"Inglés", "Arte", "Educación Física", "Religión", "Computación",
	"Tutoría", "Física", "Química", "Biología", "Música",
}

var teacherSurnames = []string{
	"García", "López", "Rodríguez", "Martínez", "Hernández", "González", "Pérez",
	"Sánchez", "Ramírez", "Torres", "Flores", "Rivera", "Gómez", "Díaz",
}

var GradeLevels = []GradeLevel{
	{ID: "init_3", Name: "Inicial 3 Años", Tier: TierInicial},
	{ID: "init_4", Name: "Inicial 4 Años", Tier: TierInicial},
	{ID: "init_5", Name: "Inicial 5 Años", Tier: TierInicial},
	{ID: "prim_1", Name: "1ro Primaria", Tier: TierPrimaria},
	{ID: "prim_2", Name: "2do Primaria", Tier: TierPrimaria},
	{ID: "prim_3", Name: "3er Primaria", Tier: TierPrimaria},
	{ID: "prim_4", Name: "4to Primaria", Tier: TierPrimaria},
	{ID: "prim_5", Name: "5to Primaria", Tier: TierPrimaria},
	{ID: "prim_6", Name: "6to Primaria", Tier: TierPrimaria},
	{ID: "sec_1", Name: "1ro Secundaria", Tier: TierSecundaria},
	{ID: "sec_2", Name: "2do Secundaria", Tier: TierSecundaria},
	{ID: "sec_3", Name: "3er Secundaria", Tier: TierSecundaria},
	{ID: "sec_4", Name: "4to Secundaria", Tier: TierSecundaria},
	{ID: "sec_5", Name: "5to Secundaria", Tier: TierSecundaria},
}

// GradeLevelByName resolves a grade display name (the section key) to its level.
func GradeLevelByName(name string) (GradeLevel, bool) {
	for _, gl := range GradeLevels {
		if gl.Name == name {
			return gl, true
		}
	}
	return GradeLevel{}, false
}

var studentProfiles = []struct{ firstName, lastName string }{
	{"Mateo", "Silva"},
	{"Sofia", "Rojas"},
	{"Santiago", "Vargas"},
	{"Valentina", "Castillo"},
	{"Sebastian", "Mendoza"},
	{"Camila", "Chavez"},
	{"Alejandro", "Ramos"},
	{"Lucia", "Romero"},
	{"Diego", "Fernandez"},
	{"Maria", "Ruiz"},
	{"Samuel", "Alvarez"},
	{"Isabella", "Vasquez"},
	{"Daniel", "Jimenez"},
	{"Gabriela", "Moreno"},
}

const (
	recessName     = "RECREO / LONCHERA"
	recessSlot     = "Lun-Vie 10:00 - 10:30"
	peName         = "Educación Física"
	peSlot         = "Vie 08:00 - 10:00"
	peTeacherIndex = 6
)

type subject struct {
	name       string
	teacherIdx int
	slot       string
}

// curricula holds the nine academic courses of each tier.
var curricula = map[Tier][]subject{
	TierInicial: {
		{"Psicomotricidad", 0, "Lun 08:00 - 10:00"},
		{"Juegos Lúdicos", 5, "Lun 10:30 - 12:30"},
		{"Comunicación", 1, "Mar 08:00 - 10:00"},
		{"Descubrimiento", 2, "Mar 10:30 - 12:30"},
		{"Matemática", 0, "Mie 08:00 - 10:00"},
		{"Taller de Cuentos", 1, "Mie 10:30 - 12:30"},
		{"Inglés", 4, "Jue 08:00 - 10:00"},
		{"Minichef / Arte", 5, "Jue 10:30 - 12:30"},
		{"Tutoría", 9, "Vie 10:30 - 12:30"},
	},
	TierPrimaria: {
		{"Matemáticas", 0, "Lun 08:00 - 10:00"},
		{"Comunicación", 1, "Lun 10:30 - 12:30"},
		{"Ciencia y Ambiente", 2, "Mar 08:00 - 10:00"},
		{"Personal Social", 3, "Mar 10:30 - 12:30"},
		{"Inglés", 4, "Mie 08:00 - 10:00"},
		{"Arte y Cultura", 5, "Mie 10:30 - 12:30"},
		{"Religión", 7, "Jue 08:00 - 10:00"},
		{"Computación", 8, "Jue 10:30 - 12:30"},
		{"Tutoría / Plan Lector", 9, "Vie 10:30 - 12:30"},
	},
	TierSecundaria: {
		{"Matemáticas", 0, "Lun 08:00 - 10:00"},
		{"Comunicación", 1, "Lun 10:30 - 12:30"},
		{"C.T.A. (Ciencias)", 10, "Mar 08:00 - 10:00"},
		{"Historia y Geografía", 3, "Mar 10:30 - 12:30"},
		{"Inglés Avanzado", 4, "Mie 08:00 - 10:00"},
		{"D.P.C.C. (Cívica)", 7, "Mie 10:30 - 12:30"},
		{"Física Elemental", 10, "Jue 08:00 - 10:00"},
		{"Computación", 8, "Jue 10:30 - 12:30"},
		{"Arte / Música", 13, "Vie 10:30 - 12:30"},
	},
}

const (
	gradeFeedback      = "Buen desempeño, sigue así."
	syllabusProgress   = 60
	syllabusTopicsDone = 6
	unknownTeacherName = "Docente"
)

var topicTemplate = []struct {
	title string
	typ   TopicType
}{
	{"Introducción al curso", TopicTheory},
	{"Fundamentos básicos I", TopicTheory},
	{"Práctica Calificada 1", TopicPractice},
	{"Fundamentos básicos II", TopicTheory},
	{"Desarrollo de competencias", TopicTheory},
	{"Práctica Calificada 2", TopicPractice},
	{"Evaluación Parcial", TopicPractice},
	{"Temas Avanzados I", TopicTheory},
	{"Proyecto de investigación", TopicPractice},
	{"Examen Final", TopicPractice},
}

var defaultAnnouncements = []Announcement{
	{ID: "a1", Title: "Campeonato Deportivo", Content: "Inician los juegos deportivos interescolares la próxima semana.", Date: "2024-03-15", Author: "Director General"},
	{ID: "a2", Title: "Entrega de Libretas", Content: "Reunión de padres de familia para entrega de notas del primer bimestre.", Date: "2024-03-20", Author: "Director General"},
}
