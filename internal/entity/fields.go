package entity

// Field names a value in the chart store.
type Field string

const (
	FieldLoading          Field = "echartsLoading"
	FieldProjects         Field = "projectsOption"
	FieldLanguages        Field = "languagePieChartOption"
	FieldMachines         Field = "machinesOption"
	FieldEditors          Field = "editorsOption"
	FieldOperatingSystems Field = "operatingSystemsOption"
)

// ProjectsChartTitle is the title of the bar chart.
const ProjectsChartTitle = "Projects Code Time"

// PieChart binds a category to its chart title and store field.
type PieChart struct {
	Category Category
	Title    string
	Field    Field
}

// PieCharts is the fixed category to field table.
var PieCharts = []PieChart{
	{Category: CategoryLanguages, Title: "Language Usage Time", Field: FieldLanguages},
	{Category: CategoryMachines, Title: "Machines", Field: FieldMachines},
	{Category: CategoryEditors, Title: "Editors", Field: FieldEditors},
	{Category: CategoryOperatingSystems, Title: "Operating Systems", Field: FieldOperatingSystems},
}

// ChartFields lists the fields holding chart configs.
func ChartFields() []Field {
	out := []Field{FieldProjects}
	for _, pc := range PieCharts {
		out = append(out, pc.Field)
	}
	return out
}

func ParseChartField(s string) (Field, bool) {
	for _, f := range ChartFields() {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
