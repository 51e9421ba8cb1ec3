package data

// defaultSeed is the built-in fixture set: two registered trainees (password
// "secret"), one enrollable trainee without an account, and a small program
// worth of schedule, grades, attendance and contents.
const defaultSeed = `
trainees:
  - id: trn-0001
    national_id: "29805241301234"
    name: "Mona Adel"
    phone: "01001234567"
    program: "Full-Stack Web Development"
    password: "secret"
    registered: true
  - id: trn-0002
    national_id: "30011051502211"
    name: "Omar Farouk"
    phone: "01227654321"
    program: "Data Analysis"
    password: "secret"
    registered: true
  - id: trn-0003
    national_id: "30109251104478"
    name: "Salma Hassan"
    phone: "01119876543"
    program: "Full-Stack Web Development"
    registered: false

schedule:
  - day: "Sunday"
    startTime: "09:00"
    endTime: "12:00"
    course: "Backend Fundamentals"
    room: "B-104"
    instructor: "Dr. Ahmed Samir"
  - day: "Tuesday"
    startTime: "13:00"
    endTime: "16:00"
    course: "Databases"
    room: "Lab 2"
    instructor: "Eng. Heba Mostafa"
  - day: "Thursday"
    startTime: "09:00"
    endTime: "12:00"
    course: "Frontend Workshop"
    room: "Lab 1"
    instructor: "Eng. Karim Nabil"

grades:
  - course: "Backend Fundamentals"
    term: "Term 1"
    score: 42
    max: 50
  - course: "Databases"
    term: "Term 1"
    score: 38
    max: 40

attendance:
  - contentId: cnt-01
    content: "Backend Fundamentals"
    stats:
      present: 3
      absent: 1
      total: 4
    sessions:
      - date: "2026-08-02"
        status: present
      - date: "2026-08-09"
        status: present
      - date: "2026-08-16"
        status: absent
      - date: "2026-08-23"
        status: present
  - contentId: cnt-02
    content: "Databases"
    stats:
      present: 5
      absent: 0
      total: 5
    sessions:
      - date: "2026-08-04"
        status: present
      - date: "2026-08-11"
        status: present
      - date: "2026-08-18"
        status: present
      - date: "2026-08-25"
        status: present
      - date: "2026-09-01"
        status: present

contents:
  - id: cnt-01
    name: "Backend Fundamentals"
    description: "HTTP, REST and service design"
    instructor: "Dr. Ahmed Samir"
    lectureCount: 2
  - id: cnt-02
    name: "Databases"
    description: "Relational modelling and SQL"
    instructor: "Eng. Heba Mostafa"
    lectureCount: 1

lectures:
  cnt-01:
    - id: lec-101
      contentId: cnt-01
      title: "Introduction to HTTP"
      date: "2026-08-02"
      hasFile: true
    - id: lec-102
      contentId: cnt-01
      title: "REST API design"
      date: "2026-08-09"
      hasFile: false
  cnt-02:
    - id: lec-201
      contentId: cnt-02
      title: "Normal forms"
      date: "2026-08-04"
      hasFile: true
`
