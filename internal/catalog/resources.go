package catalog

var seedResources = []Resource{
	{ID: "se-1", Title: "Complete JavaScript Course", Type: ResourceCourse, Provider: "Udemy", Duration: "69 hours", Difficulty: "beginner", Rating: 4.7, Skills: []string{"JavaScript"}},
	{ID: "se-2", Title: "React - The Complete Guide", Type: ResourceCourse, Provider: "Udemy", Duration: "48 hours", Difficulty: "intermediate", Rating: 4.6, Skills: []string{"React", "JavaScript"}},
	{ID: "se-3", Title: "System Design Interview", Type: ResourceBook, Provider: "Amazon", Duration: "320 pages", Difficulty: "advanced", Rating: 4.5, Skills: []string{"System Design"}},

	{ID: "ds-1", Title: "Python for Data Science", Type: ResourceCourse, Provider: "Coursera", Duration: "40 hours", Difficulty: "beginner", Rating: 4.8, Skills: []string{"Python", "Data Analysis"}},
	{ID: "ds-2", Title: "Machine Learning Specialization", Type: ResourceCertification, Provider: "Stanford Online", Duration: "3 months", Difficulty: "intermediate", Rating: 4.9, Skills: []string{"Machine Learning", "Statistics"}},

	{ID: "pm-1", Title: "Product Management Fundamentals", Type: ResourceCourse, Provider: "LinkedIn Learning", Duration: "12 hours", Difficulty: "beginner", Rating: 4.4, Skills: []string{"Strategic Planning", "Leadership"}},
	{ID: "pm-2", Title: "Agile Project Management", Type: ResourceCertification, Provider: "PMI", Duration: "6 weeks", Difficulty: "intermediate", Rating: 4.6, Skills: []string{"Agile Methodology"}},

	{ID: "ux-1", Title: "User Experience Design Fundamentals", Type: ResourceCourse, Provider: "Google UX Design", Duration: "6 months", Difficulty: "beginner", Rating: 4.7, Skills: []string{"User Research", "Design Tools"}},
	{ID: "ux-2", Title: "Advanced Figma Masterclass", Type: ResourceCourse, Provider: "Skillshare", Duration: "8 hours", Difficulty: "intermediate", Rating: 4.5, Skills: []string{"Design Tools", "Prototyping"}},

	{ID: "dm-1", Title: "Digital Marketing Specialization", Type: ResourceCertification, Provider: "Google Digital Marketing", Duration: "4 months", Difficulty: "beginner", Rating: 4.6, Skills: []string{"SEO/SEM", "Analytics"}},
	{ID: "dm-2", Title: "Social Media Marketing Mastery", Type: ResourceCourse, Provider: "HubSpot Academy", Duration: "15 hours", Difficulty: "intermediate", Rating: 4.4, Skills: []string{"Social Media Marketing", "Content Marketing"}},

	{ID: "cs-1", Title: "CompTIA Security+ Certification", Type: ResourceCertification, Provider: "CompTIA", Duration: "3 months", Difficulty: "intermediate", Rating: 4.7, Skills: []string{"Network Security", "Security Tools"}},
	{ID: "cs-2", Title: "Ethical Hacking Course", Type: ResourceCourse, Provider: "Cybrary", Duration: "20 hours", Difficulty: "advanced", Rating: 4.5, Skills: []string{"Ethical Hacking", "Threat Analysis"}},
}
