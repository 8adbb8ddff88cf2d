package i18n

// Supported language codes.
const (
	Uzbek   = "uz"
	Russian = "ru"
	English = "en"
)

var messages = map[string]map[string]string{
	Uzbek: {
		"system_name":           "O'qituvchilarni baholash tizimi",
		"header_subtitle":       "O'qituvchilaringizni xolis baholang",
		"select_class":          "Sinfni tanlang",
		"step_1_label":          "1. Sinfingizni tanlang",
		"step_1_placeholder":    "Sinf...",
		"step_2_label":          "2. Ism va familiyangiz",
		"step_2_placeholder":    "Ism va familiya",
		"step_3_label":          "3. O'qituvchilarni baholang",
		"comment_placeholder":   "Izoh qoldiring (ixtiyoriy)",
		"submit_button":         "Yuborish",
		"submit_recommendation": "Kamida o'qituvchilarning yarmini baholang",
		"success_title":         "Rahmat!",
		"success_message":       "Baholaringiz muvaffaqiyatli yuborildi",
		"resubmit_button":       "Yana baholash",
		"submission_failed":     "Xatolik yuz berdi. Iltimos qaytadan urunib ko'ring.",
		"select_class_view":     "Natijalarni ko'rish uchun sinfni tanlang",
		"student_feedback":      "O'quvchilar fikrlari",
		"no_comments":           "Hozircha izohlar mavjud emas.",
		"no_teachers_assigned":  "Ushbu sinfga hali o'qituvchilar biriktirilmagan.",
		"admin_totals_title":    "Umumiy natijalar",
		"all_months":            "Barcha oylar",
		"select_month":          "Oyni tanlang",
		"search_teacher":        "O'qituvchini qidirish",
		"table_teacher":         "O'qituvchi",
		"table_subject":         "Fan",
		"table_avg_score":       "O'rtacha ball",
		"table_vote_count":      "Ovozlar soni",
		"table_yearly_total":    "Yillik",
		"no_search_results":     "Hech narsa topilmadi",
		"footer_info":           "Ma'lumotlar har bir so'rovda qayta hisoblanadi",
		"error_name_required":   "Ismingizni kiriting",
		"error_min_ratings":     "Kamida {0} ta o'qituvchini baholang ({1} tadan)",
		"month_0":               "Yanvar",
		"month_1":               "Fevral",
		"month_2":               "Mart",
		"month_3":               "Aprel",
		"month_4":               "May",
		"month_5":               "Iyun",
		"month_6":               "Iyul",
		"month_7":               "Avgust",
		"month_8":               "Sentabr",
		"month_9":               "Oktabr",
		"month_10":              "Noyabr",
		"month_11":              "Dekabr",
	},
	Russian: {
		"system_name":           "Система оценки учителей",
		"header_subtitle":       "Оцените своих учителей честно",
		"select_class":          "Выберите класс",
		"step_1_label":          "1. Выберите свой класс",
		"step_1_placeholder":    "Класс...",
		"step_2_label":          "2. Ваше имя и фамилия",
		"step_2_placeholder":    "Имя и фамилия",
		"step_3_label":          "3. Оцените учителей",
		"comment_placeholder":   "Оставьте комментарий (необязательно)",
		"submit_button":         "Отправить",
		"submit_recommendation": "Оцените хотя бы половину учителей",
		"success_title":         "Спасибо!",
		"success_message":       "Ваши оценки успешно отправлены",
		"resubmit_button":       "Оценить снова",
		"submission_failed":     "Произошла ошибка. Пожалуйста, попробуйте ещё раз.",
		"select_class_view":     "Выберите класс для просмотра результатов",
		"student_feedback":      "Отзывы учеников",
		"no_comments":           "Комментариев пока нет.",
		"no_teachers_assigned":  "К этому классу ещё не прикреплены учителя.",
		"admin_totals_title":    "Общие результаты",
		"all_months":            "Все месяцы",
		"select_month":          "Выберите месяц",
		"search_teacher":        "Поиск учителя",
		"table_teacher":         "Учитель",
		"table_subject":         "Предмет",
		"table_avg_score":       "Средний балл",
		"table_vote_count":      "Количество голосов",
		"table_yearly_total":    "За год",
		"no_search_results":     "Ничего не найдено",
		"footer_info":           "Данные пересчитываются при каждом запросе",
		"error_name_required":   "Введите своё имя",
		"error_min_ratings":     "Оцените не менее {0} из {1} учителей",
		"month_0":               "Январь",
		"month_1":               "Февраль",
		"month_2":               "Март",
		"month_3":               "Апрель",
		"month_4":               "Май",
		"month_5":               "Июнь",
		"month_6":               "Июль",
		"month_7":               "Август",
		"month_8":               "Сентябрь",
		"month_9":               "Октябрь",
		"month_10":              "Ноябрь",
		"month_11":              "Декабрь",
	},
	English: {
		"system_name":           "Teacher Evaluation System",
		"header_subtitle":       "Rate your teachers fairly",
		"select_class":          "Select a class",
		"step_1_label":          "1. Choose your class",
		"step_1_placeholder":    "Class...",
		"step_2_label":          "2. Your full name",
		"step_2_placeholder":    "First and last name",
		"step_3_label":          "3. Rate your teachers",
		"comment_placeholder":   "Leave a comment (optional)",
		"submit_button":         "Submit",
		"submit_recommendation": "Rate at least half of the teachers",
		"success_title":         "Thank you!",
		"success_message":       "Your ratings were submitted",
		"resubmit_button":       "Rate again",
		"submission_failed":     "Something went wrong. Please try again.",
		"select_class_view":     "Select a class to view results",
		"student_feedback":      "Student feedback",
		"no_comments":           "No comments yet.",
		"no_teachers_assigned":  "No teachers are assigned to this class yet.",
		"admin_totals_title":    "Overall results",
		"all_months":            "All months",
		"select_month":          "Select month",
		"search_teacher":        "Search teacher",
		"table_teacher":         "Teacher",
		"table_subject":         "Subject",
		"table_avg_score":       "Average score",
		"table_vote_count":      "Votes",
		"table_yearly_total":    "Year",
		"no_search_results":     "Nothing found",
		"footer_info":           "Figures are recomputed on every request",
		"error_name_required":   "Please enter your name",
		"error_min_ratings":     "Rate at least {0} of {1} teachers",
		"month_0":               "January",
		"month_1":               "February",
		"month_2":               "March",
		"month_3":               "April",
		"month_4":               "May",
		"month_5":               "June",
		"month_6":               "July",
		"month_7":               "August",
		"month_8":               "September",
		"month_9":               "October",
		"month_10":              "November",
		"month_11":              "December",
	},
}
