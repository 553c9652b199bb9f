package catalog

func init() {
	if err := validateCatalog(seedCareers, seedQuestions); err != nil {
		panic("catalog: invalid seed data: " + err.Error())
	}
	c = buildCatalog(seedCareers, seedQuestions, seedResources)
}

var seedCareers = []CareerProfile{
	{
		ID:            "software-engineer",
		Title:         "Software Engineer",
		Description:   "Design, develop, and maintain software applications and systems using various programming languages and frameworks.",
		Category:      "Technology",
		Icon:          "💻",
		Skills:        []string{"JavaScript", "React", "Problem Solving", "Version Control", "Database Management"},
		RelatedSkills: []string{"JavaScript", "Python", "React", "Node.js", "Database Management", "System Design", "Problem Solving", "Version Control"},
		TargetLevel:   TargetLevel,
		AverageSalary: "$95,000 - $150,000",
		GrowthRate:    "22%",
	},
	{
		ID:            "data-scientist",
		Title:         "Data Scientist",
		Description:   "Extract insights from complex datasets using statistical analysis, machine learning, and data visualization techniques.",
		Category:      "Technology",
		Icon:          "📊",
		Skills:        []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization"},
		RelatedSkills: []string{"Python", "R", "SQL", "Machine Learning", "Statistics", "Data Visualization", "Big Data", "Business Intelligence"},
		TargetLevel:   TargetLevel,
		AverageSalary: "$100,000 - $170,000",
		GrowthRate:    "35%",
	},
	{
		ID:            "product-manager",
		Title:         "Product Manager",
		Description:   "Lead product development from conception to launch, coordinating cross-functional teams and driving product strategy.",
		Category:      "Management",
		Icon:          "📋",
		Skills:        []string{"Strategic Planning", "User Experience", "Leadership", "Agile Methodology", "Analytics"},
		RelatedSkills: []string{"Strategic Planning", "Market Research", "User Experience", "Agile Methodology", "Communication", "Analytics", "Leadership", "Stakeholder Management"},
		TargetLevel:   TargetLevel,
		AverageSalary: "$110,000 - $180,000",
		GrowthRate:    "19%",
	},
	{
		ID:            "ux-designer",
		Title:         "UX/UI Designer",
		Description:   "Create intuitive and engaging user experiences through research, design, and testing of digital interfaces.",
		Category:      "Design",
		Icon:          "🎨",
		Skills:        []string{"User Research", "Design Tools", "Prototyping", "Usability Testing", "Information Architecture"},
		RelatedSkills: []string{"User Research", "Wireframing", "Prototyping", "Design Tools", "Information Architecture", "Usability Testing", "Visual Design", "Interaction Design"},
		TargetLevel:   TargetLevel,
		AverageSalary: "$80,000 - $130,000",
		GrowthRate:    "13%",
	},
	{
		ID:            "digital-marketer",
		Title:         "Digital Marketing Specialist",
		Description:   "Develop and execute digital marketing campaigns across various channels to drive brand awareness and customer engagement.",
		Category:      "Marketing",
		Icon:          "📱",
		Skills:        []string{"SEO/SEM", "Social Media Marketing", "Content Marketing", "Analytics", "PPC Advertising"},
		RelatedSkills: []string{"SEO/SEM", "Social Media Marketing", "Content Marketing", "Email Marketing", "Analytics", "PPC Advertising", "Marketing Automation", "Brand Strategy"},
		TargetLevel:   TargetLevel,
		AverageSalary: "$55,000 - $90,000",
		GrowthRate:    "10%",
	},
	{
		ID:            "cybersecurity-analyst",
		Title:         "Cybersecurity Analyst",
		Description:   "Protect organizations from cyber threats by implementing security measures, monitoring systems, and responding to incidents.",
		Category:      "Security",
		Icon:          "🔒",
		Skills:        []string{"Network Security", "Threat Analysis", "Incident Response", "Security Tools", "Risk Assessment"},
		RelatedSkills: []string{"Network Security", "Threat Analysis", "Incident Response", "Security Tools", "Risk Assessment", "Compliance", "Ethical Hacking", "Security Policies"},
		TargetLevel:   TargetLevel,
		AverageSalary: "$90,000 - $140,000",
		GrowthRate:    "31%",
	},
}
